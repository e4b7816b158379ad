package csvcodec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/erazemk/track/internal/model"
)

// BOM is written before the header so spreadsheet tools detect UTF-8.
const BOM = "\uFEFF"

// Escape quotes a field if it contains a comma, a double quote or a line
// break, doubling any quotes inside.
func Escape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Record returns the CSV fields of an item in column order.
func Record(it model.Item, labels Labels) []string {
	return []string{
		it.Name,
		it.PurchaseDate.String(),
		it.Price.StringFixed(2),
		it.Category,
		model.JoinTags(it.Tags),
		labels.StatusLabel(it.Status),
		it.SoldPrice.StringFixed(2),
		it.Notes,
	}
}

// Encode writes items as CSV: a byte-order mark, a header row with the
// label set's column titles, then one row per item. Rows are separated by
// \n with no trailing line break.
//
// Tags are joined with commas, so a tag that itself contains a comma is
// split in two when the file is read back.
func Encode(w io.Writer, items []model.Item, labels Labels) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(BOM)
	writeLine(bw, labels.Columns[:])
	for _, it := range items {
		bw.WriteByte('\n')
		writeLine(bw, Record(it, labels))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

func writeLine(bw *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(Escape(f))
	}
}
