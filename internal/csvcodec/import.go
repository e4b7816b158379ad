package csvcodec

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/model"
)

// ErrEmptyFile is returned when a file has no data row after the header.
var ErrEmptyFile = errors.New("csv file is empty or has no data rows")

// Row rejection reasons.
var (
	ErrTooFewColumns       = fmt.Errorf("row has fewer than %d columns", NumColumns)
	ErrMissingName         = errors.New("name is empty")
	ErrMissingPurchaseDate = errors.New("purchase date is empty")
	ErrInvalidPurchaseDate = errors.New("purchase date is not a valid date")
	ErrNegativePrice       = errors.New("price is negative")
)

// RowError records why a data row was rejected. Row is the 1-based line of
// the file the row starts on.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }
func (e RowError) Unwrap() error { return e.Err }

// Result is the outcome of decoding a file.
type Result struct {
	Items  []model.Item
	Errors []RowError
}

// Options control Decode.
type Options struct {
	// Labels lists the label sets accepted for status values.
	Labels []Labels
	// BaseID is added to the data row index to form each item's ID.
	BaseID int64
}

// Decode reads a CSV file. The first row is a header and is skipped. Rows
// with fewer than NumColumns fields, or failing the required-field checks,
// are reported in Result.Errors; all other rows become items. Unparsable
// prices default to zero. Columns after the eighth are ignored.
func Decode(r io.Reader, opts Options) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	text := strings.TrimPrefix(string(data), BOM)

	rows := ReadRows(text)
	if len(rows) < 2 {
		return nil, ErrEmptyFile
	}

	res := &Result{Items: []model.Item{}}
	for i, row := range rows[1:] {
		it, err := decodeRow(row.Fields, opts.Labels)
		if err != nil {
			res.Errors = append(res.Errors, RowError{Row: row.Line, Err: err})
			continue
		}
		it.ID = opts.BaseID + int64(i)
		res.Items = append(res.Items, it)
	}
	return res, nil
}

func decodeRow(row []string, labels []Labels) (model.Item, error) {
	if len(row) < NumColumns {
		return model.Item{}, ErrTooFewColumns
	}

	it := model.Item{
		Name:      strings.TrimSpace(row[0]),
		Price:     parseAmount(row[2]),
		Category:  strings.TrimSpace(row[3]),
		Tags:      model.SplitTags(row[4]),
		Status:    StatusFromLabel(row[5], labels...),
		SoldPrice: parseAmount(row[6]),
		Notes:     strings.TrimSpace(row[7]),
	}

	if it.Name == "" {
		return model.Item{}, ErrMissingName
	}
	rawDate := strings.TrimSpace(row[1])
	if rawDate == "" {
		return model.Item{}, ErrMissingPurchaseDate
	}
	d, err := date.Parse(rawDate)
	if err != nil {
		return model.Item{}, ErrInvalidPurchaseDate
	}
	it.PurchaseDate = d
	if it.Price.IsNegative() {
		return model.Item{}, ErrNegativePrice
	}
	if it.Status != model.StatusSold {
		it.SoldPrice = decimal.Zero
	}
	return it, nil
}

// parseAmount parses a decimal, returning zero when s is not a number.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
