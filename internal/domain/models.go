package domain

import "time"

// DateLayout is the calendar-date format used for sale/purchase dates and
// alert dates everywhere in the app, including spreadsheet round-trips.
const DateLayout = "2006-01-02"

type Sale struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	PhoneNumber  string    `json:"phone_number"`
	Category     string    `json:"category"`
	CostPrice    float64   `json:"cost_price"`
	SellingPrice float64   `json:"selling_price"`
	Profit       float64   `json:"profit"`
	Date         string    `json:"date"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Customer struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	PhoneNumber      string    `json:"phone_number"`
	TotalPurchases   int       `json:"total_purchases"`
	TotalSpent       float64   `json:"total_spent"`
	LastPurchaseDate string    `json:"last_purchase_date,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type Purchase struct {
	ID            string    `json:"id"`
	SupplierName  string    `json:"supplier_name"`
	SupplierPhone string    `json:"supplier_phone,omitempty"`
	Category      string    `json:"category"`
	Cost          float64   `json:"cost"`
	Description   string    `json:"description,omitempty"`
	Date          string    `json:"date"`
	AlertDate     string    `json:"alert_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type Settings struct {
	AppName string `json:"app_name"`
	IsSetup bool   `json:"is_setup"`
}

// SaleInput carries raw form values. Prices stay strings until validation
// has run so that "not a number" surfaces as a field error, not a JSON
// decode failure.
type SaleInput struct {
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	Category     string `json:"category"`
	CostPrice    string `json:"cost_price"`
	SellingPrice string `json:"selling_price"`
	Date         string `json:"date"`
	Notes        string `json:"notes,omitempty"`
}

type PurchaseInput struct {
	SupplierName  string `json:"supplier_name"`
	SupplierPhone string `json:"supplier_phone,omitempty"`
	Category      string `json:"category"`
	Cost          string `json:"cost"`
	Description   string `json:"description,omitempty"`
	Date          string `json:"date"`
	AlertDate     string `json:"alert_date,omitempty"`
}

type SettingsUpdateRequest struct {
	AppName string `json:"app_name"`
}

type SaleResponse struct {
	Sale    Sale   `json:"sale"`
	Warning string `json:"warning,omitempty"`
}

type SaleListResponse struct {
	Sales       []Sale  `json:"sales"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	TotalProfit float64 `json:"total_profit"`
}

type PurchaseResponse struct {
	Purchase Purchase `json:"purchase"`
	Warning  string   `json:"warning,omitempty"`
}

type PurchaseListResponse struct {
	Purchases []Purchase `json:"purchases"`
	Count     int        `json:"count"`
	TotalCost float64    `json:"total_cost"`
}

type CustomerListResponse struct {
	Customers []Customer `json:"customers"`
	Count     int        `json:"count"`
}

type DashboardStats struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalProfit      float64 `json:"total_profit"`
	Transactions     int     `json:"transactions"`
	ThisMonthRevenue float64 `json:"this_month_revenue"`
	LastMonthRevenue float64 `json:"last_month_revenue"`
	RevenueGrowth    float64 `json:"revenue_growth"`
}

type CategoryRank struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

type CategoryPerformance struct {
	Category     string  `json:"category"`
	Revenue      float64 `json:"revenue"`
	Profit       float64 `json:"profit"`
	Count        int     `json:"count"`
	AvgSale      float64 `json:"avg_sale"`
	ProfitMargin float64 `json:"profit_margin"`
}

type CustomerRank struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Revenue     float64 `json:"revenue"`
	Count       int     `json:"count"`
	AvgPurchase float64 `json:"avg_purchase"`
}

type TrendPoint struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

type AnalyticsStats struct {
	RevenueGrowth float64 `json:"revenue_growth"`
	ProfitMargin  float64 `json:"profit_margin"`
	Categories    int     `json:"categories"`
	AvgSaleValue  float64 `json:"avg_sale_value"`
}

type PurchaseAlert struct {
	Purchase  Purchase `json:"purchase"`
	DaysUntil int      `json:"days_until"`
}

type DashboardResponse struct {
	Stats         DashboardStats `json:"stats"`
	TopCategories []CategoryRank `json:"top_categories"`
	RecentSales   []Sale         `json:"recent_sales"`
}

type AnalyticsResponse struct {
	Stats               AnalyticsStats        `json:"stats"`
	CategoryPerformance []CategoryPerformance `json:"category_performance"`
	TopCustomers        []CustomerRank        `json:"top_customers"`
	MonthlyTrend        []TrendPoint          `json:"monthly_trend"`
}

type ImportSummary struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Warning  string `json:"warning,omitempty"`
}

type Notification struct {
	ID        string    `json:"id"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	DismissMS int       `json:"dismiss_ms"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)
