package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/derive"
	"github.com/erazemk/track/internal/model"
)

func testStatistics() derive.Statistics {
	ref := date.New(2024, 6, 1)
	return derive.Compute([]model.Item{
		{
			ID:           1,
			Name:         "Laptop",
			PurchaseDate: date.New(2024, 1, 1),
			Price:        decimal.NewFromInt(1500),
			Category:     "Electronics | Office",
			Status:       model.StatusActive,
		},
		{
			ID:           2,
			Name:         "Phone",
			PurchaseDate: date.New(2023, 6, 1),
			Price:        decimal.NewFromInt(1000),
			Status:       model.StatusSold,
			SoldPrice:    decimal.NewFromInt(1200),
		},
	}, ref)
}

func TestStatisticsEnglish(t *testing.T) {
	var b strings.Builder
	err := Statistics(&b, testStatistics(), Options{Lang: "en", Currency: "USD", Date: date.New(2024, 6, 1)})
	require.NoError(t, err)
	out := b.String()

	assert.Contains(t, out, "# Statistics · 2024-06-01")
	assert.Contains(t, out, "| 2 | $2,500.00 |")
	assert.Contains(t, out, "| Active | 1 | 50% |")
	assert.Contains(t, out, "| Retired | 0 | 0% |")
	assert.Contains(t, out, "**Profit/Loss:** +$200.00")
	assert.Contains(t, out, "**Most Expensive:** Laptop ($1,500.00)")
	assert.Contains(t, out, `| Electronics \| Office | 1 | $1,500.00 |`)
	assert.Contains(t, out, "| Uncategorized | 1 | $1,000.00 |")
}

func TestStatisticsChineseEmpty(t *testing.T) {
	var b strings.Builder
	err := Statistics(&b, derive.Compute(nil, date.New(2024, 6, 1)), Options{Lang: "zh"})
	require.NoError(t, err)
	out := b.String()

	assert.Contains(t, out, "| 服役中 | 0 | 0% |")
	assert.NotContains(t, out, "盈亏")
	assert.NotContains(t, out, "分类支出")
	assert.True(t, strings.HasPrefix(out, "# "))
}
