// Package excel is the spreadsheet codec: it turns collections into
// xlsx workbooks with human-readable column headers and reads workbooks
// back as flat rows keyed by those headers. Interpreting the rows
// (required fields, ids, derived values) is the service's job.
package excel

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"salestracker/backend/internal/domain"
)

// Column headers shared by export and import. Import matches on these
// exactly, with the listed fallbacks for customer files.
const (
	HeaderCustomerName  = "Customer Name"
	HeaderPhoneNumber   = "Phone Number"
	HeaderCategory      = "Category"
	HeaderCostPrice     = "Cost Price (₹)"
	HeaderSellingPrice  = "Selling Price (₹)"
	HeaderProfit        = "Profit (₹)"
	HeaderDate          = "Date"
	HeaderCreatedAt     = "Created At"
	HeaderSupplierName  = "Supplier Name"
	HeaderSupplierPhone = "Supplier Phone"
	HeaderCost          = "Cost (₹)"
	HeaderDescription   = "Description"
	HeaderAlertDate     = "Alert Date"

	HeaderTotalPurchases = "Total Purchases"
	HeaderTotalSpent     = "Total Spent (₹)"
	HeaderAvgPurchase    = "Average Purchase (₹)"
	HeaderLastPurchase   = "Last Purchase Date"
	HeaderCustomerSince  = "Customer Since"
)

var salesHeaders = []string{
	HeaderCustomerName, HeaderPhoneNumber, HeaderCategory,
	HeaderCostPrice, HeaderSellingPrice, HeaderProfit,
	HeaderDate, HeaderCreatedAt,
}

var purchaseHeaders = []string{
	HeaderSupplierName, HeaderSupplierPhone, HeaderCategory,
	HeaderCost, HeaderDescription, HeaderDate, HeaderAlertDate,
	HeaderCreatedAt,
}

var customerHeaders = []string{
	HeaderCustomerName, HeaderPhoneNumber, HeaderTotalPurchases,
	HeaderTotalSpent, HeaderAvgPurchase, HeaderLastPurchase,
	HeaderCustomerSince,
}

func ExportSales(sales []domain.Sale) ([]byte, error) {
	rows := make([][]any, 0, len(sales))
	for _, sale := range sales {
		rows = append(rows, []any{
			sale.CustomerName, sale.PhoneNumber, sale.Category,
			sale.CostPrice, sale.SellingPrice, sale.Profit,
			sale.Date, sale.CreatedAt.Format(time.RFC3339),
		})
	}
	return writeWorkbook("Sales Data", salesHeaders, rows)
}

func ExportPurchases(purchases []domain.Purchase) ([]byte, error) {
	rows := make([][]any, 0, len(purchases))
	for _, purchase := range purchases {
		rows = append(rows, []any{
			purchase.SupplierName, purchase.SupplierPhone, purchase.Category,
			purchase.Cost, purchase.Description, purchase.Date,
			purchase.AlertDate, purchase.CreatedAt.Format(time.RFC3339),
		})
	}
	return writeWorkbook("Purchase Data", purchaseHeaders, rows)
}

// ExportCustomers expects customers whose stats have already been
// recomputed from the sale ledger.
func ExportCustomers(customers []domain.Customer) ([]byte, error) {
	rows := make([][]any, 0, len(customers))
	for _, customer := range customers {
		avg := 0.0
		if customer.TotalPurchases > 0 {
			avg = customer.TotalSpent / float64(customer.TotalPurchases)
		}
		lastPurchase := customer.LastPurchaseDate
		if lastPurchase == "" {
			lastPurchase = "Never"
		}
		rows = append(rows, []any{
			customer.Name, customer.PhoneNumber, customer.TotalPurchases,
			customer.TotalSpent, avg, lastPurchase,
			customer.CreatedAt.Format(domain.DateLayout),
		})
	}
	return writeWorkbook("Customers", customerHeaders, rows)
}

// SampleSales produces the template workbook users fill in before a
// sales import.
func SampleSales(now time.Time) ([]byte, error) {
	today := now.Format(domain.DateLayout)
	createdAt := now.Format(time.RFC3339)
	rows := [][]any{
		{"John Doe", "9876543210", "Electronics", 1000, 1200, 200, today, createdAt},
		{"Jane Smith", "9876543211", "Clothing", 500, 750, 250, today, createdAt},
	}
	return writeWorkbook("Sample Sales Data", salesHeaders, rows)
}

// Rows reads the first sheet of a workbook as flat records keyed by the
// header row. Cells under missing columns read back as "".
func Rows(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	headers := raw[0]
	records := make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				record[header] = cells[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func writeWorkbook(sheet string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := sizeColumns(f, sheet, headers, rows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sizeColumns widens each column to its longest cell, capped at 50.
func sizeColumns(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for col := range headers {
		width := len(headers[col])
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			if n := len(fmt.Sprint(row[col])); n > width {
				width = n
			}
		}
		if width < 10 {
			width = 10
		}
		if width > 48 {
			width = 48
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width+2)); err != nil {
			return err
		}
	}
	return nil
}
