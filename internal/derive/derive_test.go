package derive

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/model"
)

var ref = date.MustParse("2024-06-01")

func item(id int64, price float64, purchased string, status model.Status) model.Item {
	return model.Item{
		ID:           id,
		Name:         "item",
		Price:        decimal.NewFromFloat(price),
		PurchaseDate: date.MustParse(purchased),
		Status:       status,
	}
}

func TestUsageDaysNeverNegative(t *testing.T) {
	for _, d := range []string{"2020-01-01", "2024-05-31", "2024-06-01", "2024-06-02", "2030-12-31"} {
		assert.GreaterOrEqual(t, UsageDays(date.MustParse(d), ref), 0, d)
	}
	assert.Equal(t, 0, UsageDays(ref, ref))
	assert.Equal(t, 1, UsageDays(ref.AddDays(1), ref))
	assert.Equal(t, 152, UsageDays(date.MustParse("2024-01-01"), ref))
	assert.Equal(t, 0, UsageDays(date.Date{}, ref))
}

func TestDailyCost(t *testing.T) {
	it := item(1, 100, "2024-05-22", model.StatusActive)
	assert.Equal(t, "10", DailyCost(it, ref).String())

	sameDay := item(2, 100, "2024-06-01", model.StatusActive)
	assert.True(t, DailyCost(sameDay, ref).IsZero())
}

func TestUsageDaysCenturies(t *testing.T) {
	antique := item(1, 236980, "1700-01-01", model.StatusActive)
	assert.Equal(t, 118490, UsageDays(antique.PurchaseDate, ref))
	assert.Equal(t, "2", DailyCost(antique, ref).String())

	ordered := []model.Item{item(2, 10, "2020-01-01", model.StatusActive), antique}
	assert.Equal(t, (118490+1613+1)/2, Compute(ordered, ref).AverageUsageDays)
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		days int
		want Duration
	}{
		{0, Duration{}},
		{29, Duration{Days: 29}},
		{30, Duration{Months: 1}},
		{45, Duration{Months: 1, Days: 15}},
		{365, Duration{Years: 1}},
		{400, Duration{Years: 1, Months: 1, Days: 5}},
		{800, Duration{Years: 2, Months: 2, Days: 10}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decompose(tt.days), "Decompose(%d)", tt.days)
	}
}

func TestFormatUsageDuration(t *testing.T) {
	en := Units{Year: "year", Years: "years", Month: "month", Months: "months", Day: "day", Days: "days"}

	assert.Equal(t, "0 days", FormatUsageDuration(0, en))
	assert.Equal(t, "1 day", FormatUsageDuration(1, en))
	assert.Equal(t, "29 days", FormatUsageDuration(29, en))
	assert.Equal(t, "1 month", FormatUsageDuration(30, en))
	assert.Equal(t, "1 year", FormatUsageDuration(365, en))
	assert.Equal(t, "1 year 1 month 5 days", FormatUsageDuration(400, en))
	assert.Equal(t, "1 year 2 days", FormatUsageDuration(367, en))
}

func TestComputeEmpty(t *testing.T) {
	st := Compute(nil, ref)

	assert.Equal(t, 0, st.TotalItems)
	assert.True(t, st.TotalSpending.IsZero())
	assert.True(t, st.ProfitLoss.IsZero())
	assert.Zero(t, st.Active+st.Retired+st.Sold)
	assert.Zero(t, st.AverageUsageDays)
	assert.Nil(t, st.MostExpensive)
	assert.Empty(t, st.Categories)
	assert.Zero(t, st.Share(model.StatusActive))
}

func TestCompute(t *testing.T) {
	items := []model.Item{
		item(1, 100, "2024-05-22", model.StatusActive),  // 10 days
		item(2, 300, "2024-05-02", model.StatusRetired), // 30 days
		item(3, 300, "2024-05-31", model.StatusSold),    // 1 day
		item(4, 50, "2024-06-01", model.StatusActive),   // 0 days
	}
	items[0].Category = "电子"
	items[1].Category = "家具"
	items[2].Category = "电子"
	items[2].SoldPrice = decimal.NewFromInt(120)

	st := Compute(items, ref)

	assert.Equal(t, 4, st.TotalItems)
	assert.Equal(t, "750", st.TotalSpending.String())
	assert.Equal(t, 2, st.Active)
	assert.Equal(t, 1, st.Retired)
	assert.Equal(t, 1, st.Sold)
	assert.Equal(t, "-180", st.ProfitLoss.String())
	// (10 + 30 + 1 + 0) / 4 = 10.25
	assert.Equal(t, 10, st.AverageUsageDays)
	// 100/10 + nothing for the same-day purchase
	assert.Equal(t, "10", st.ActiveDailyCost.String())

	require.NotNil(t, st.MostExpensive)
	assert.Equal(t, int64(2), st.MostExpensive.ID, "first item reaching the maximum wins")

	require.Len(t, st.Categories, 3)
	assert.Equal(t, "电子", st.Categories[0].Category)
	assert.Equal(t, "400", st.Categories[0].Total.String())
	assert.Equal(t, 2, st.Categories[0].Count)
	assert.Equal(t, "家具", st.Categories[1].Category)
	assert.Equal(t, Uncategorized, st.Categories[2].Category)
	assert.Equal(t, "50", st.CategoryTotals()[Uncategorized].String())
}

func TestAverageUsageDaysRoundsHalfUp(t *testing.T) {
	items := []model.Item{
		item(1, 1, "2024-05-31", model.StatusActive), // 1 day
		item(2, 1, "2024-05-31", model.StatusActive), // 1 day
		item(3, 1, "2024-05-30", model.StatusActive), // 2 days
		item(4, 1, "2024-05-30", model.StatusActive), // 2 days
	}
	// mean 1.5
	assert.Equal(t, 2, Compute(items, ref).AverageUsageDays)
}

func TestFor(t *testing.T) {
	m := For(item(1, 400, "2023-05-03", model.StatusActive), ref)
	assert.Equal(t, 395, m.UsageDays)
	assert.Equal(t, Duration{Years: 1, Months: 1}, m.Duration)
	assert.Equal(t, "1.01", m.DailyCost.StringFixed(2))
}
