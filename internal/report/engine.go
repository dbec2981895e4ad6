// Package report derives dashboard and analytics figures from the
// current record set. Everything here is pure and recomputed on demand;
// with a personal-business-sized ledger there is nothing to gain from
// incremental aggregates, and recompute-from-scratch cannot drift.
package report

import (
	"slices"
	"time"

	"salestracker/backend/internal/domain"
)

const topLimit = 5

// AlertWindowDays is the inclusive look-ahead for purchase reminders.
const AlertWindowDays = 7

func Dashboard(sales []domain.Sale, now time.Time) domain.DashboardStats {
	stats := domain.DashboardStats{Transactions: len(sales)}

	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	for _, sale := range sales {
		stats.TotalRevenue += sale.SellingPrice
		stats.TotalProfit += sale.Profit

		date, err := time.Parse(domain.DateLayout, sale.Date)
		if err != nil {
			continue
		}
		switch {
		case !date.Before(thisMonth):
			stats.ThisMonthRevenue += sale.SellingPrice
		case !date.Before(lastMonth):
			stats.LastMonthRevenue += sale.SellingPrice
		}
	}

	// Growth is defined as 0 when there is no previous month to
	// compare against, not an error and not infinity.
	if stats.LastMonthRevenue > 0 {
		stats.RevenueGrowth = (stats.ThisMonthRevenue - stats.LastMonthRevenue) / stats.LastMonthRevenue * 100
	}

	return stats
}

func TopCategories(sales []domain.Sale) []domain.CategoryRank {
	revenue := make(map[string]float64)
	order := make([]string, 0)
	for _, sale := range sales {
		if _, seen := revenue[sale.Category]; !seen {
			order = append(order, sale.Category)
		}
		revenue[sale.Category] += sale.SellingPrice
	}

	ranks := make([]domain.CategoryRank, 0, len(order))
	for _, category := range order {
		ranks = append(ranks, domain.CategoryRank{Category: category, Revenue: revenue[category]})
	}

	// Stable sort keeps first-seen order for equal revenues.
	slices.SortStableFunc(ranks, func(a, b domain.CategoryRank) int {
		return cmpFloatDesc(a.Revenue, b.Revenue)
	})
	return truncate(ranks)
}

func CategoryPerformance(sales []domain.Sale) []domain.CategoryPerformance {
	byCategory := make(map[string]*domain.CategoryPerformance)
	order := make([]string, 0)
	for _, sale := range sales {
		perf, seen := byCategory[sale.Category]
		if !seen {
			perf = &domain.CategoryPerformance{Category: sale.Category}
			byCategory[sale.Category] = perf
			order = append(order, sale.Category)
		}
		perf.Revenue += sale.SellingPrice
		perf.Profit += sale.Profit
		perf.Count++
	}

	perfs := make([]domain.CategoryPerformance, 0, len(order))
	for _, category := range order {
		perf := *byCategory[category]
		if perf.Count > 0 {
			perf.AvgSale = perf.Revenue / float64(perf.Count)
		}
		// Margin must come back as 0 for zero revenue, never NaN.
		if perf.Revenue > 0 {
			perf.ProfitMargin = perf.Profit / perf.Revenue * 100
		}
		perfs = append(perfs, perf)
	}

	slices.SortStableFunc(perfs, func(a, b domain.CategoryPerformance) int {
		return cmpFloatDesc(a.Revenue, b.Revenue)
	})
	return truncate(perfs)
}

func TopCustomers(sales []domain.Sale) []domain.CustomerRank {
	byName := make(map[string]*domain.CustomerRank)
	order := make([]string, 0)
	for _, sale := range sales {
		rank, seen := byName[sale.CustomerName]
		if !seen {
			rank = &domain.CustomerRank{Name: sale.CustomerName, PhoneNumber: sale.PhoneNumber}
			byName[sale.CustomerName] = rank
			order = append(order, sale.CustomerName)
		}
		rank.Revenue += sale.SellingPrice
		rank.Count++
	}

	ranks := make([]domain.CustomerRank, 0, len(order))
	for _, name := range order {
		rank := *byName[name]
		if rank.Count > 0 {
			rank.AvgPurchase = rank.Revenue / float64(rank.Count)
		}
		ranks = append(ranks, rank)
	}

	slices.SortStableFunc(ranks, func(a, b domain.CustomerRank) int {
		return cmpFloatDesc(a.Revenue, b.Revenue)
	})
	return truncate(ranks)
}

// MonthlyTrend buckets revenue by calendar month of the sale date,
// sorted chronologically for time-series rendering.
func MonthlyTrend(sales []domain.Sale) []domain.TrendPoint {
	type key struct {
		year  int
		month int
	}
	buckets := make(map[key]float64)
	for _, sale := range sales {
		date, err := time.Parse(domain.DateLayout, sale.Date)
		if err != nil {
			continue
		}
		buckets[key{date.Year(), int(date.Month())}] += sale.SellingPrice
	}

	points := make([]domain.TrendPoint, 0, len(buckets))
	for k, revenue := range buckets {
		label := time.Date(k.year, time.Month(k.month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		points = append(points, domain.TrendPoint{
			Year:    k.year,
			Month:   k.month,
			Label:   label,
			Revenue: revenue,
		})
	}

	slices.SortFunc(points, func(a, b domain.TrendPoint) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Month - b.Month
	})
	return points
}

func Analytics(sales []domain.Sale, now time.Time) domain.AnalyticsStats {
	dashboard := Dashboard(sales, now)

	stats := domain.AnalyticsStats{RevenueGrowth: dashboard.RevenueGrowth}
	if dashboard.TotalRevenue > 0 {
		stats.ProfitMargin = dashboard.TotalProfit / dashboard.TotalRevenue * 100
	}
	if len(sales) > 0 {
		stats.AvgSaleValue = dashboard.TotalRevenue / float64(len(sales))
	}

	categories := make(map[string]struct{})
	for _, sale := range sales {
		categories[sale.Category] = struct{}{}
	}
	stats.Categories = len(categories)

	return stats
}

// UpcomingAlerts returns purchases whose alert date falls within
// [today, today+AlertWindowDays] by calendar-day difference. An alert
// for exactly today or exactly seven days out both qualify.
func UpcomingAlerts(purchases []domain.Purchase, now time.Time) []domain.PurchaseAlert {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	alerts := make([]domain.PurchaseAlert, 0)
	for _, purchase := range purchases {
		if purchase.AlertDate == "" {
			continue
		}
		alertDate, err := time.Parse(domain.DateLayout, purchase.AlertDate)
		if err != nil {
			continue
		}
		days := int(alertDate.Sub(today).Hours() / 24)
		if days >= 0 && days <= AlertWindowDays {
			alerts = append(alerts, domain.PurchaseAlert{Purchase: purchase, DaysUntil: days})
		}
	}
	return alerts
}

func cmpFloatDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}

func truncate[T any](items []T) []T {
	if len(items) > topLimit {
		return items[:topLimit]
	}
	return items
}
