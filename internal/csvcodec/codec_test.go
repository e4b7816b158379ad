package csvcodec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/model"
)

var (
	labelsEN = Labels{
		Columns: [NumColumns]string{"Item Name", "Purchase Date", "Price", "Category", "Tags", "Status", "Sold Price", "Notes"},
		Status:  map[model.Status]string{model.StatusActive: "Active", model.StatusRetired: "Retired", model.StatusSold: "Sold"},
	}
	labelsZH = Labels{
		Columns: [NumColumns]string{"物品名称", "购买日期", "购买价格", "分类", "标签", "状态", "卖出价格", "备注"},
		Status:  map[model.Status]string{model.StatusActive: "服役中", model.StatusRetired: "已退役", model.StatusSold: "已卖出"},
	}
	allLabels = []Labels{labelsEN, labelsZH}
)

func decode(t *testing.T, text string) *Result {
	t.Helper()
	res, err := Decode(strings.NewReader(text), Options{Labels: allLabels, BaseID: 1000})
	require.NoError(t, err)
	return res
}

func TestEncode(t *testing.T) {
	items := []model.Item{{
		Name:         "Laptop, 15\"",
		PurchaseDate: date.MustParse("2024-01-01"),
		Price:        decimal.NewFromInt(8000),
		Category:     "电子",
		Tags:         []string{"work", "daily"},
		Status:       model.StatusSold,
		SoldPrice:    decimal.RequireFromString("4500.5"),
		Notes:        "first line\nsecond line",
	}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, items, labelsEN))

	want := BOM + "Item Name,Purchase Date,Price,Category,Tags,Status,Sold Price,Notes\n" +
		`"Laptop, 15""",2024-01-01,8000.00,电子,"work,daily",Sold,4500.50,"first line` + "\n" + `second line"`
	assert.Equal(t, want, buf.String())
}

func TestEncodeEmptyWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil, labelsZH))
	assert.Equal(t, BOM+"物品名称,购买日期,购买价格,分类,标签,状态,卖出价格,备注", buf.String())
}

func TestDecodeExampleRow(t *testing.T) {
	res := decode(t, "物品名称,购买日期,购买价格,分类,标签,状态,卖出价格,备注\n"+
		"Laptop,2024-01-01,8000.00,电子,work,服役中,0.00,daily driver")

	require.Empty(t, res.Errors)
	require.Len(t, res.Items, 1)
	it := res.Items[0]
	assert.Equal(t, int64(1000), it.ID)
	assert.Equal(t, "Laptop", it.Name)
	assert.Equal(t, date.MustParse("2024-01-01"), it.PurchaseDate)
	assert.Equal(t, "8000.00", it.Price.StringFixed(2))
	assert.Equal(t, "电子", it.Category)
	assert.Equal(t, []string{"work"}, it.Tags)
	assert.Equal(t, model.StatusActive, it.Status)
	assert.True(t, it.SoldPrice.IsZero())
	assert.Equal(t, "daily driver", it.Notes)
}

func TestDecodeRejectsShortRows(t *testing.T) {
	res := decode(t, "h1,h2,h3,h4,h5,h6,h7,h8\nLaptop,2024-01-01,8000,电子,work")

	assert.Empty(t, res.Items)
	require.Len(t, res.Errors, 1)
	assert.ErrorIs(t, res.Errors[0], ErrTooFewColumns)
	assert.Equal(t, 2, res.Errors[0].Row)
}

func TestDecodeRowChecks(t *testing.T) {
	text := strings.Join([]string{
		"header,,,,,,,",
		",2024-01-01,10,,,Active,0,",             // no name
		"Desk,,10,,,Active,0,",                   // no date
		"Desk,someday,10,,,Active,0,",            // bad date
		"Desk,2024-01-01,-5,,,Active,0,",         // negative price
		"Lamp,2024-01-01,abc,,,Retired,xyz,",     // bad numbers default to zero
		"Chair,2024-02-02,20,,,Unknown,0,,extra", // unknown status, extra column
		"Bike,2024-03-03,900,运动,,已卖出,650,",
		"Kettle,2024/3/4,80,,,Active,0,", // spreadsheet date form
	}, "\r\n")

	res := decode(t, text)

	require.Len(t, res.Errors, 4)
	assert.ErrorIs(t, res.Errors[0], ErrMissingName)
	assert.ErrorIs(t, res.Errors[1], ErrMissingPurchaseDate)
	assert.ErrorIs(t, res.Errors[2], ErrInvalidPurchaseDate)
	assert.ErrorIs(t, res.Errors[3], ErrNegativePrice)

	require.Len(t, res.Items, 4)
	lamp, chair, bike, kettle := res.Items[0], res.Items[1], res.Items[2], res.Items[3]

	assert.True(t, lamp.Price.IsZero())
	assert.Equal(t, model.StatusRetired, lamp.Status)
	assert.Equal(t, model.StatusActive, chair.Status)
	assert.Equal(t, model.StatusSold, bike.Status)
	assert.Equal(t, "650", bike.SoldPrice.String())

	// IDs follow the data row index, so rejected rows leave gaps.
	assert.Equal(t, int64(1004), lamp.ID)
	assert.Equal(t, int64(1005), chair.ID)
	assert.Equal(t, int64(1006), bike.ID)
	assert.Equal(t, date.MustParse("2024-03-04"), kettle.PurchaseDate)
}

func TestDecodeErrorsReportFileLines(t *testing.T) {
	text := "header,,,,,,,\n" +
		"\n" +
		"\"Desk\nwood\",2024-01-01,10,,,Active,0,\n" +
		",2024-01-01,5,,,Active,0,\n" +
		"Lamp,2024-01-01,20,,,Active,0,\"warm\r\nlight\"\n" +
		"Chair,2024-01-01"

	res := decode(t, text)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "Desk\nwood", res.Items[0].Name)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 5, res.Errors[0].Row)
	assert.ErrorIs(t, res.Errors[0], ErrMissingName)
	assert.Equal(t, 8, res.Errors[1].Row)
	assert.ErrorIs(t, res.Errors[1], ErrTooFewColumns)
	assert.EqualError(t, res.Errors[0], "row 5: name is empty")
}

func TestDecodeEmptyFile(t *testing.T) {
	for _, text := range []string{"", BOM, "only,a,header\n", "\n\n  ,  \n"} {
		_, err := Decode(strings.NewReader(text), Options{Labels: allLabels})
		assert.ErrorIs(t, err, ErrEmptyFile, "%q", text)
	}
}

func TestRoundTrip(t *testing.T) {
	items := []model.Item{
		{
			Name:         `Camera "X100"`,
			PurchaseDate: date.MustParse("2023-07-15"),
			Price:        decimal.RequireFromString("1299.999"),
			Category:     "电子, 相机",
			Tags:         []string{"travel", "photo"},
			Status:       model.StatusSold,
			SoldPrice:    decimal.RequireFromString("900.1"),
			Notes:        "box kept\nlens cap lost",
		},
		{
			Name:         "Sofa",
			PurchaseDate: date.MustParse("2022-01-01"),
			Price:        decimal.NewFromInt(3000),
			Tags:         []string{},
			Status:       model.StatusRetired,
		},
	}

	for _, labels := range allLabels {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, items, labels))

		res := decode(t, buf.String())
		require.Empty(t, res.Errors)
		require.Len(t, res.Items, len(items))

		for i, want := range items {
			got := res.Items[i]
			assert.Equal(t, want.Name, got.Name)
			assert.Equal(t, want.PurchaseDate, got.PurchaseDate)
			assert.Equal(t, want.Price.StringFixed(2), got.Price.StringFixed(2))
			assert.Equal(t, want.Category, got.Category)
			assert.Equal(t, want.Tags, got.Tags)
			assert.Equal(t, want.Status, got.Status)
			assert.Equal(t, want.SoldPrice.StringFixed(2), got.SoldPrice.StringFixed(2))
			assert.Equal(t, want.Notes, got.Notes)
		}
	}
}

func TestRoundTripSplitsTagsWithCommas(t *testing.T) {
	items := []model.Item{{
		Name:         "Shoes",
		PurchaseDate: date.MustParse("2024-01-01"),
		Price:        decimal.NewFromInt(100),
		Tags:         []string{"red, blue"},
		Status:       model.StatusActive,
	}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, items, labelsEN))
	res := decode(t, buf.String())

	require.Len(t, res.Items, 1)
	assert.Equal(t, []string{"red", "blue"}, res.Items[0].Tags)
}

func TestStatusFromLabel(t *testing.T) {
	assert.Equal(t, model.StatusSold, StatusFromLabel("Sold", allLabels...))
	assert.Equal(t, model.StatusRetired, StatusFromLabel(" 已退役 ", allLabels...))
	assert.Equal(t, model.StatusSold, StatusFromLabel("sold"))
	assert.Equal(t, model.StatusActive, StatusFromLabel("???", allLabels...))

	for _, labels := range allLabels {
		for _, st := range model.Statuses {
			assert.Equal(t, st, StatusFromLabel(labels.StatusLabel(st), labels))
		}
	}
}
