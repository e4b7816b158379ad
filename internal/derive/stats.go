package derive

import (
	"github.com/shopspring/decimal"

	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/model"
)

// Uncategorized is the category key for items without a category.
const Uncategorized = "uncategorized"

// CategoryTotal is the spending for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// Statistics summarizes a collection of items.
type Statistics struct {
	TotalItems       int             `json:"totalItems"`
	TotalSpending    decimal.Decimal `json:"totalSpending"`
	Active           int             `json:"active"`
	Retired          int             `json:"retired"`
	Sold             int             `json:"sold"`
	ProfitLoss       decimal.Decimal `json:"profitLoss"`
	AverageUsageDays int             `json:"averageUsageDays"`
	ActiveDailyCost  decimal.Decimal `json:"activeDailyCost"`
	MostExpensive    *model.Item     `json:"mostExpensive"`
	Categories       []CategoryTotal `json:"categories"`
}

// Count returns the number of items with the given status.
func (s Statistics) Count(st model.Status) int {
	switch st {
	case model.StatusActive:
		return s.Active
	case model.StatusRetired:
		return s.Retired
	case model.StatusSold:
		return s.Sold
	}
	return 0
}

// Share returns the fraction (0..1) of items with the given status.
func (s Statistics) Share(st model.Status) float64 {
	if s.TotalItems == 0 {
		return 0
	}
	return float64(s.Count(st)) / float64(s.TotalItems)
}

// CategoryTotals returns the category breakdown as a map.
func (s Statistics) CategoryTotals() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(s.Categories))
	for _, c := range s.Categories {
		m[c.Category] = c.Total
	}
	return m
}

// Compute walks items once and returns their statistics. Categories are
// listed in first-encounter order. The most expensive item is the first
// one reaching the highest price.
func Compute(items []model.Item, ref date.Date) Statistics {
	st := Statistics{
		TotalItems:      len(items),
		TotalSpending:   decimal.Zero,
		ProfitLoss:      decimal.Zero,
		ActiveDailyCost: decimal.Zero,
		Categories:      []CategoryTotal{},
	}

	index := make(map[string]int)
	totalDays := 0

	for i := range items {
		it := &items[i]
		st.TotalSpending = st.TotalSpending.Add(it.Price)
		days := UsageDays(it.PurchaseDate, ref)
		totalDays += days

		switch it.Status {
		case model.StatusActive:
			st.Active++
			if days > 0 {
				st.ActiveDailyCost = st.ActiveDailyCost.Add(it.Price.Div(decimal.NewFromInt(int64(days))))
			}
		case model.StatusRetired:
			st.Retired++
		case model.StatusSold:
			st.Sold++
			st.ProfitLoss = st.ProfitLoss.Add(it.SoldPrice.Sub(it.Price))
		}

		if st.MostExpensive == nil || it.Price.GreaterThan(st.MostExpensive.Price) {
			top := it.Clone()
			st.MostExpensive = &top
		}

		cat := it.Category
		if cat == "" {
			cat = Uncategorized
		}
		j, ok := index[cat]
		if !ok {
			j = len(st.Categories)
			index[cat] = j
			st.Categories = append(st.Categories, CategoryTotal{Category: cat, Total: decimal.Zero})
		}
		st.Categories[j].Total = st.Categories[j].Total.Add(it.Price)
		st.Categories[j].Count++
	}

	if n := len(items); n > 0 {
		// Round half up; totalDays is never negative.
		st.AverageUsageDays = (2*totalDays + n) / (2 * n)
	}
	return st
}
