package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"salestracker/backend/internal/cache"
	"salestracker/backend/internal/currency"
	"salestracker/backend/internal/domain"
	"salestracker/backend/internal/excel"
	"salestracker/backend/internal/notify"
	"salestracker/backend/internal/report"
	"salestracker/backend/internal/store"
	"salestracker/backend/internal/validate"
	"salestracker/backend/internal/xid"
)

const dashboardCacheKey = "dashboard"

type Service struct {
	repo     store.Repository
	dash     cache.DashboardCache
	feed     *notify.Feed
	cacheTTL time.Duration
}

func New(repo store.Repository, dash cache.DashboardCache, feed *notify.Feed, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 20 * time.Second
	}
	return &Service{
		repo:     repo,
		dash:     dash,
		feed:     feed,
		cacheTTL: cacheTTL,
	}
}

// storageWarning converts a persistence failure into a user-facing
// warning. The store keeps the mutation in memory, so the operation
// succeeded for the session and must not be reported as lost.
func storageWarning(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if errors.Is(err, store.ErrStorage) {
		log.Printf("[service] WARN: %v", err)
		return "Storage is unavailable; changes are kept in memory for this session only.", nil
	}
	return "", err
}

func (s *Service) ListSales(ctx context.Context, query string) (domain.SaleListResponse, error) {
	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return domain.SaleListResponse{}, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	filtered := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if query != "" &&
			!strings.Contains(strings.ToLower(sale.CustomerName), query) &&
			!strings.Contains(sale.PhoneNumber, query) &&
			!strings.Contains(strings.ToLower(sale.Category), query) {
			continue
		}
		filtered = append(filtered, sale)
	}

	resp := domain.SaleListResponse{Sales: filtered, Count: len(filtered)}
	for _, sale := range filtered {
		resp.TotalAmount += sale.SellingPrice
		resp.TotalProfit += sale.Profit
	}
	return resp, nil
}

func validateSaleInput(in domain.SaleInput) validate.Errors {
	errs := validate.Errors{}
	for field, value := range map[string]string{
		"customer_name": in.CustomerName,
		"phone_number":  in.PhoneNumber,
		"category":      in.Category,
		"cost_price":    in.CostPrice,
		"selling_price": in.SellingPrice,
	} {
		if msg := validate.Field(field, value); msg != "" {
			errs[field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (s *Service) AddSale(ctx context.Context, in domain.SaleInput) (domain.SaleResponse, error) {
	if errs := validateSaleInput(in); errs != nil {
		return domain.SaleResponse{}, errs
	}

	costPrice := validate.Price(in.CostPrice)
	sellingPrice := validate.Price(in.SellingPrice)
	profit := sellingPrice - costPrice

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = time.Now().UTC().Format(domain.DateLayout)
	}

	sale := domain.Sale{
		ID:           xid.New("sale"),
		CustomerName: strings.TrimSpace(in.CustomerName),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Category:     strings.TrimSpace(in.Category),
		CostPrice:    costPrice,
		SellingPrice: sellingPrice,
		Profit:       profit,
		Date:         date,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.CreateSale(ctx, sale)
	warning, err := storageWarning(err)
	if err != nil {
		return domain.SaleResponse{}, err
	}

	reconcileWarning, err := s.reconcileSaleAdded(ctx, *created)
	if err != nil {
		return domain.SaleResponse{}, err
	}
	if warning == "" {
		warning = reconcileWarning
	}

	if profit < 0 {
		s.feed.Warning(fmt.Sprintf("This sale has a negative profit of %s.", currency.Format(-profit)))
	}

	s.invalidateDashboard(ctx)
	s.feed.Success(fmt.Sprintf("Sale added successfully! Customer: %s, Amount: %s, Profit: %s",
		created.CustomerName, currency.Format(created.SellingPrice), currency.Format(created.Profit)))

	return domain.SaleResponse{Sale: *created, Warning: warning}, nil
}

func (s *Service) UpdateSale(ctx context.Context, id string, in domain.SaleInput) (domain.SaleResponse, error) {
	existing, err := s.repo.GetSaleByID(ctx, id)
	if err != nil {
		return domain.SaleResponse{}, err
	}

	if errs := validateSaleInput(in); errs != nil {
		return domain.SaleResponse{}, errs
	}

	costPrice := validate.Price(in.CostPrice)
	sellingPrice := validate.Price(in.SellingPrice)

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = time.Now().UTC().Format(domain.DateLayout)
	}

	updated := *existing
	updated.CustomerName = strings.TrimSpace(in.CustomerName)
	updated.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	updated.Category = strings.TrimSpace(in.Category)
	updated.CostPrice = costPrice
	updated.SellingPrice = sellingPrice
	updated.Profit = sellingPrice - costPrice
	updated.Date = date
	updated.Notes = strings.TrimSpace(in.Notes)

	saved, err := s.repo.UpdateSale(ctx, updated)
	warning, err := storageWarning(err)
	if err != nil {
		return domain.SaleResponse{}, err
	}

	// Recompute the customer behind the new number, and behind the old
	// number too when the edit moved the sale between customers.
	reconcileWarning, err := s.recomputeCustomer(ctx, saved.PhoneNumber, saved.CustomerName, false)
	if err != nil {
		return domain.SaleResponse{}, err
	}
	if warning == "" {
		warning = reconcileWarning
	}
	if existing.PhoneNumber != saved.PhoneNumber {
		reconcileWarning, err = s.recomputeCustomer(ctx, existing.PhoneNumber, "", true)
		if err != nil {
			return domain.SaleResponse{}, err
		}
		if warning == "" {
			warning = reconcileWarning
		}
	}

	s.invalidateDashboard(ctx)
	s.feed.Success("Sale updated successfully!")

	return domain.SaleResponse{Sale: *saved, Warning: warning}, nil
}

func (s *Service) DeleteSale(ctx context.Context, id string) (string, error) {
	sale, err := s.repo.GetSaleByID(ctx, id)
	if err != nil {
		return "", err
	}

	warning, err := storageWarning(s.repo.DeleteSale(ctx, id))
	if err != nil {
		return "", err
	}

	reconcileWarning, err := s.recomputeCustomer(ctx, sale.PhoneNumber, "", true)
	if err != nil {
		return "", err
	}
	if warning == "" {
		warning = reconcileWarning
	}

	s.invalidateDashboard(ctx)
	s.feed.Success("Sale deleted successfully!")
	return warning, nil
}

// reconcileSaleAdded matches by phone number or exact name, the same
// dual-key rule the ledger has always used.
func (s *Service) reconcileSaleAdded(ctx context.Context, sale domain.Sale) (string, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return "", err
	}

	for _, customer := range customers {
		if customer.PhoneNumber == sale.PhoneNumber || customer.Name == sale.CustomerName {
			customer.TotalPurchases++
			customer.TotalSpent += sale.SellingPrice
			customer.LastPurchaseDate = sale.Date
			_, err := s.repo.UpdateCustomer(ctx, customer)
			return storageWarning(err)
		}
	}

	_, err = s.repo.CreateCustomer(ctx, domain.Customer{
		ID:               xid.New("cust"),
		Name:             sale.CustomerName,
		PhoneNumber:      sale.PhoneNumber,
		TotalPurchases:   1,
		TotalSpent:       sale.SellingPrice,
		LastPurchaseDate: sale.Date,
		CreatedAt:        time.Now().UTC(),
	})
	return storageWarning(err)
}

// recomputeCustomer rebuilds one customer's stats from the sale ledger
// (full recompute, never a delta). With prune set, a customer left with
// zero sales is removed entirely.
func (s *Service) recomputeCustomer(ctx context.Context, phoneNumber string, name string, prune bool) (string, error) {
	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return "", err
	}

	count := 0
	total := 0.0
	lastDate := ""
	for _, sale := range sales {
		if sale.PhoneNumber != phoneNumber {
			continue
		}
		count++
		total += sale.SellingPrice
		if sale.Date > lastDate {
			lastDate = sale.Date
		}
	}

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return "", err
	}

	for _, customer := range customers {
		if customer.PhoneNumber != phoneNumber {
			continue
		}
		if count == 0 && prune {
			return storageWarning(s.repo.DeleteCustomer(ctx, customer.ID))
		}
		if name != "" {
			customer.Name = name
		}
		customer.TotalPurchases = count
		customer.TotalSpent = total
		customer.LastPurchaseDate = lastDate
		_, err := s.repo.UpdateCustomer(ctx, customer)
		return storageWarning(err)
	}

	if count == 0 {
		return "", nil
	}

	_, err = s.repo.CreateCustomer(ctx, domain.Customer{
		ID:               xid.New("cust"),
		Name:             name,
		PhoneNumber:      phoneNumber,
		TotalPurchases:   count,
		TotalSpent:       total,
		LastPurchaseDate: lastDate,
		CreatedAt:        time.Now().UTC(),
	})
	return storageWarning(err)
}

func (s *Service) ListCustomers(ctx context.Context, query string) (domain.CustomerListResponse, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return domain.CustomerListResponse{}, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	filtered := make([]domain.Customer, 0, len(customers))
	for _, customer := range customers {
		if query != "" &&
			!strings.Contains(strings.ToLower(customer.Name), query) &&
			!strings.Contains(customer.PhoneNumber, query) {
			continue
		}
		filtered = append(filtered, customer)
	}

	return domain.CustomerListResponse{Customers: filtered, Count: len(filtered)}, nil
}

// DeleteCustomer removes the identity record only; the customer's sales
// stay in the ledger with their historical name and number.
func (s *Service) DeleteCustomer(ctx context.Context, id string) (string, error) {
	if _, err := s.repo.GetCustomerByID(ctx, id); err != nil {
		return "", err
	}

	warning, err := storageWarning(s.repo.DeleteCustomer(ctx, id))
	if err != nil {
		return "", err
	}

	s.feed.Success("Customer deleted successfully!")
	return warning, nil
}

func (s *Service) DeleteAllCustomers(ctx context.Context) (string, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return "", err
	}
	if len(customers) == 0 {
		s.feed.Error("No customers to delete!")
		return "", store.ErrNotFound
	}

	warning, err := storageWarning(s.repo.DeleteAllCustomers(ctx))
	if err != nil {
		return "", err
	}

	s.feed.Success("All customers deleted successfully!")
	return warning, nil
}

func (s *Service) ListPurchases(ctx context.Context) (domain.PurchaseListResponse, error) {
	purchases, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return domain.PurchaseListResponse{}, err
	}

	resp := domain.PurchaseListResponse{Purchases: purchases, Count: len(purchases)}
	for _, purchase := range purchases {
		resp.TotalCost += purchase.Cost
	}
	return resp, nil
}

func (s *Service) AddPurchase(ctx context.Context, in domain.PurchaseInput) (domain.PurchaseResponse, error) {
	errs := validate.Errors{}
	if strings.TrimSpace(in.SupplierName) == "" {
		errs["supplier_name"] = "Supplier name is required"
	}
	if strings.TrimSpace(in.Date) == "" {
		errs["date"] = "Date is required"
	}
	if msg := validate.Field("category", in.Category); msg != "" {
		errs["category"] = msg
	}
	if msg := validate.Field("cost", in.Cost); msg != "" {
		errs["cost"] = msg
	}
	if len(errs) > 0 {
		return domain.PurchaseResponse{}, errs
	}

	purchase := domain.Purchase{
		ID:            xid.New("purchase"),
		SupplierName:  strings.TrimSpace(in.SupplierName),
		SupplierPhone: strings.TrimSpace(in.SupplierPhone),
		Category:      strings.TrimSpace(in.Category),
		Cost:          validate.Price(in.Cost),
		Description:   strings.TrimSpace(in.Description),
		Date:          strings.TrimSpace(in.Date),
		AlertDate:     strings.TrimSpace(in.AlertDate),
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.CreatePurchase(ctx, purchase)
	warning, err := storageWarning(err)
	if err != nil {
		return domain.PurchaseResponse{}, err
	}

	s.feed.Success(fmt.Sprintf("Purchase added successfully! Supplier: %s, Cost: %s",
		created.SupplierName, currency.Format(created.Cost)))

	return domain.PurchaseResponse{Purchase: *created, Warning: warning}, nil
}

func (s *Service) UpcomingAlerts(ctx context.Context) ([]domain.PurchaseAlert, error) {
	purchases, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return nil, err
	}
	return report.UpcomingAlerts(purchases, time.Now().UTC()), nil
}

func (s *Service) Dashboard(ctx context.Context) (domain.DashboardResponse, error) {
	if cached, found, err := s.dash.Get(ctx, dashboardCacheKey); err == nil && found {
		return *cached, nil
	} else if err != nil {
		log.Printf("[service] WARN: dashboard cache read: %v", err)
	}

	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	recent := sales
	if len(recent) > 5 {
		recent = recent[:5]
	}

	resp := domain.DashboardResponse{
		Stats:         report.Dashboard(sales, time.Now().UTC()),
		TopCategories: report.TopCategories(sales),
		RecentSales:   recent,
	}

	if err := s.dash.Set(ctx, dashboardCacheKey, &resp, s.cacheTTL); err != nil {
		log.Printf("[service] WARN: dashboard cache write: %v", err)
	}
	return resp, nil
}

func (s *Service) Analytics(ctx context.Context) (domain.AnalyticsResponse, error) {
	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return domain.AnalyticsResponse{}, err
	}

	return domain.AnalyticsResponse{
		Stats:               report.Analytics(sales, time.Now().UTC()),
		CategoryPerformance: report.CategoryPerformance(sales),
		TopCustomers:        report.TopCustomers(sales),
		MonthlyTrend:        report.MonthlyTrend(sales),
	}, nil
}

func (s *Service) invalidateDashboard(ctx context.Context) {
	if err := s.dash.Invalidate(ctx, dashboardCacheKey); err != nil {
		log.Printf("[service] WARN: dashboard cache invalidate: %v", err)
	}
}

func (s *Service) GetSettings(ctx context.Context) (domain.Settings, error) {
	return s.repo.GetSettings(ctx)
}

func (s *Service) UpdateAppName(ctx context.Context, req domain.SettingsUpdateRequest) (domain.Settings, string, error) {
	name := strings.TrimSpace(req.AppName)
	if name == "" {
		return domain.Settings{}, "", validate.Errors{"app_name": "App name is required"}
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, "", err
	}

	settings.AppName = name
	settings.IsSetup = true

	warning, err := storageWarning(s.repo.SaveSettings(ctx, settings))
	if err != nil {
		return domain.Settings{}, "", err
	}

	s.feed.Success("App name updated successfully!")
	return settings, warning, nil
}

func parseAmount(raw string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseImportDate(raw string, fallback time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback.Format(domain.DateLayout)
	}
	for _, layout := range []string{domain.DateLayout, "02/01/2006", "2/1/2006", "01-02-06"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(domain.DateLayout)
		}
	}
	return fallback.Format(domain.DateLayout)
}

// ImportSales reads a workbook and appends one sale per usable row.
// Rows missing the customer identity are skipped and counted; a file
// that cannot be read at all aborts with zero records committed.
func (s *Service) ImportSales(ctx context.Context, r io.Reader) (domain.ImportSummary, error) {
	rows, err := excel.Rows(r)
	if err != nil {
		s.feed.Error("Error importing Excel file. Please check the file format and try again.")
		return domain.ImportSummary{}, fmt.Errorf("%w: %v", store.ErrImport, err)
	}

	now := time.Now().UTC()
	sales := make([]domain.Sale, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		customerName := strings.TrimSpace(row[excel.HeaderCustomerName])
		phoneNumber := strings.TrimSpace(row[excel.HeaderPhoneNumber])
		if customerName == "" || phoneNumber == "" {
			skipped++
			continue
		}

		costPrice := parseAmount(row[excel.HeaderCostPrice])
		sellingPrice := parseAmount(row[excel.HeaderSellingPrice])

		sales = append(sales, domain.Sale{
			ID:           xid.Imported(i),
			CustomerName: customerName,
			PhoneNumber:  phoneNumber,
			Category:     strings.TrimSpace(row[excel.HeaderCategory]),
			CostPrice:    costPrice,
			SellingPrice: sellingPrice,
			// Derived here, whatever the profit column said.
			Profit:    sellingPrice - costPrice,
			Date:      parseImportDate(row[excel.HeaderDate], now),
			CreatedAt: now,
		})
	}

	warning, err := storageWarning(s.repo.BulkCreateSales(ctx, sales))
	if err != nil {
		return domain.ImportSummary{}, err
	}

	s.invalidateDashboard(ctx)
	s.feed.Success(fmt.Sprintf("%d sales records imported successfully!", len(sales)))
	return domain.ImportSummary{Imported: len(sales), Skipped: skipped, Warning: warning}, nil
}

func (s *Service) ImportPurchases(ctx context.Context, r io.Reader) (domain.ImportSummary, error) {
	rows, err := excel.Rows(r)
	if err != nil {
		s.feed.Error("Error importing Excel file. Please check the file format.")
		return domain.ImportSummary{}, fmt.Errorf("%w: %v", store.ErrImport, err)
	}

	now := time.Now().UTC()
	purchases := make([]domain.Purchase, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		supplierName := strings.TrimSpace(row[excel.HeaderSupplierName])
		category := strings.TrimSpace(row[excel.HeaderCategory])
		if supplierName == "" || category == "" {
			skipped++
			continue
		}

		alertDate := ""
		if raw := strings.TrimSpace(row[excel.HeaderAlertDate]); raw != "" {
			alertDate = parseImportDate(raw, now)
		}

		purchases = append(purchases, domain.Purchase{
			ID:            xid.Imported(i),
			SupplierName:  supplierName,
			SupplierPhone: strings.TrimSpace(row[excel.HeaderSupplierPhone]),
			Category:      category,
			Cost:          parseAmount(row[excel.HeaderCost]),
			Description:   strings.TrimSpace(row[excel.HeaderDescription]),
			Date:          parseImportDate(row[excel.HeaderDate], now),
			AlertDate:     alertDate,
			CreatedAt:     now,
		})
	}

	warning, err := storageWarning(s.repo.BulkCreatePurchases(ctx, purchases))
	if err != nil {
		return domain.ImportSummary{}, err
	}

	s.feed.Success(fmt.Sprintf("%d purchase records imported successfully!", len(purchases)))
	return domain.ImportSummary{Imported: len(purchases), Skipped: skipped, Warning: warning}, nil
}

// ImportCustomers dedupes by phone number: new numbers become zero-sale
// customers, known numbers only get a name refresh and count as skipped.
func (s *Service) ImportCustomers(ctx context.Context, r io.Reader) (domain.ImportSummary, error) {
	rows, err := excel.Rows(r)
	if err != nil {
		s.feed.Error("Error importing customers. Please check the file format.")
		return domain.ImportSummary{}, fmt.Errorf("%w: %v", store.ErrImport, err)
	}

	existing, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return domain.ImportSummary{}, err
	}
	byPhone := make(map[string]domain.Customer, len(existing))
	for _, customer := range existing {
		byPhone[customer.PhoneNumber] = customer
	}

	now := time.Now().UTC()
	imported := 0
	skipped := 0
	warning := ""
	for i, row := range rows {
		name := strings.TrimSpace(row[excel.HeaderCustomerName])
		if name == "" {
			name = strings.TrimSpace(row["Name"])
		}
		phone := strings.TrimSpace(row[excel.HeaderPhoneNumber])
		if phone == "" {
			phone = strings.TrimSpace(row["Phone"])
		}
		if name == "" || phone == "" {
			skipped++
			continue
		}

		if known, ok := byPhone[phone]; ok {
			if known.Name != name {
				known.Name = name
				_, updateErr := s.repo.UpdateCustomer(ctx, known)
				updateWarning, err := storageWarning(updateErr)
				if err != nil {
					return domain.ImportSummary{}, err
				}
				if warning == "" {
					warning = updateWarning
				}
				byPhone[phone] = known
			}
			skipped++
			continue
		}

		customer := domain.Customer{
			ID:          xid.Imported(i),
			Name:        name,
			PhoneNumber: phone,
			CreatedAt:   now,
		}
		_, createErr := s.repo.CreateCustomer(ctx, customer)
		createWarning, err := storageWarning(createErr)
		if err != nil {
			return domain.ImportSummary{}, err
		}
		if warning == "" {
			warning = createWarning
		}
		byPhone[phone] = customer
		imported++
	}

	s.feed.Success(fmt.Sprintf("Import completed! %d customers imported, %d skipped (duplicates or invalid data)", imported, skipped))
	return domain.ImportSummary{Imported: imported, Skipped: skipped, Warning: warning}, nil
}

func (s *Service) ExportSales(ctx context.Context) ([]byte, string, error) {
	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, "", err
	}
	workbook, err := excel.ExportSales(sales)
	if err != nil {
		return nil, "", err
	}
	s.feed.Success("Sales data exported successfully!")
	return workbook, exportFilename("sales"), nil
}

func (s *Service) ExportPurchases(ctx context.Context) ([]byte, string, error) {
	purchases, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return nil, "", err
	}
	workbook, err := excel.ExportPurchases(purchases)
	if err != nil {
		return nil, "", err
	}
	s.feed.Success("Purchase data exported successfully!")
	return workbook, exportFilename("purchases"), nil
}

// ExportCustomers recomputes every customer's stats from the ledger
// before writing, so the export reflects the sales, not stored counters.
func (s *Service) ExportCustomers(ctx context.Context) ([]byte, string, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, "", err
	}
	if len(customers) == 0 {
		s.feed.Error("No customers to export!")
		return nil, "", store.ErrNotFound
	}

	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, "", err
	}

	for i := range customers {
		count := 0
		total := 0.0
		for _, sale := range sales {
			if sale.PhoneNumber == customers[i].PhoneNumber {
				count++
				total += sale.SellingPrice
			}
		}
		customers[i].TotalPurchases = count
		customers[i].TotalSpent = total
	}

	workbook, err := excel.ExportCustomers(customers)
	if err != nil {
		return nil, "", err
	}
	s.feed.Success(fmt.Sprintf("Customers exported successfully! (%d customers)", len(customers)))
	return workbook, exportFilename("customers_export"), nil
}

func (s *Service) SampleWorkbook() ([]byte, string, error) {
	workbook, err := excel.SampleSales(time.Now().UTC())
	if err != nil {
		return nil, "", err
	}
	s.feed.Info("Sample Excel file downloaded!")
	return workbook, "sample-sales-data.xlsx", nil
}

func (s *Service) Notifications() []domain.Notification {
	return s.feed.List()
}

func exportFilename(prefix string) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().UTC().Format(domain.DateLayout))
}
