// Package derive computes the metrics shown next to items: how long an item
// has been in use, what it costs per day, and collection-wide statistics.
// Nothing here is stored; every value is recomputed from the items.
package derive

import (
	"github.com/shopspring/decimal"

	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/model"
)

// UsageDays returns the whole days between the purchase date and ref,
// rounded up. A purchase date after ref counts the same as one before it,
// which tolerates clock skew; entry validation rejects future dates.
func UsageDays(purchase, ref date.Date) int {
	if purchase.IsZero() {
		return 0
	}
	return ref.DaysSince(purchase)
}

// DailyCost is the price spread over the usage days, or zero on the day of
// purchase.
func DailyCost(it model.Item, ref date.Date) decimal.Decimal {
	days := UsageDays(it.PurchaseDate, ref)
	if days <= 0 {
		return decimal.Zero
	}
	return it.Price.Div(decimal.NewFromInt(int64(days)))
}

// Metrics bundles the per-item derived values.
type Metrics struct {
	UsageDays int             `json:"usageDays"`
	DailyCost decimal.Decimal `json:"dailyCost"`
	Duration  Duration        `json:"duration"`
}

// For returns the derived values of a single item.
func For(it model.Item, ref date.Date) Metrics {
	days := UsageDays(it.PurchaseDate, ref)
	return Metrics{
		UsageDays: days,
		DailyCost: DailyCost(it, ref),
		Duration:  Decompose(days),
	}
}
