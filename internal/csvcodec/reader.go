package csvcodec

import "strings"

// Row is a parsed CSV row and the 1-based line of the text it starts on.
type Row struct {
	Line   int
	Fields []string
}

// ParseRows splits CSV text into rows of fields. See ReadRows.
func ParseRows(text string) [][]string {
	var out [][]string
	for _, r := range ReadRows(text) {
		out = append(out, r.Fields)
	}
	return out
}

// ReadRows splits CSV text into rows, remembering where each row starts.
//
// Fields may be wrapped in double quotes, in which case they can contain
// commas, line breaks and doubled quotes ("" for a literal "). Rows end at
// \n, \r or \r\n outside quotes. Rows whose fields are all blank are
// dropped, and so are empty lines. Line numbers count every line break,
// including those inside quoted fields.
func ReadRows(text string) []Row {
	var (
		rows   []Row
		row    []string
		field  strings.Builder
		quoted bool
		line   = 1
		start  int // line the current row began on, 0 before its first rune
	)

	// pending reports whether anything has been read since the last row ended.
	pending := func() bool { return field.Len() > 0 || len(row) > 0 }

	endRow := func() {
		row = append(row, field.String())
		field.Reset()
		if !blank(row) {
			rows = append(rows, Row{Line: start, Fields: row})
		}
		row = nil
		start = 0
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		crlf := c == '\r' && i+1 < len(runes) && runes[i+1] == '\n'
		if start == 0 && c != '\n' && c != '\r' {
			start = line
		}
		switch {
		case c == '"' && quoted && i+1 < len(runes) && runes[i+1] == '"':
			field.WriteRune('"')
			i++
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			row = append(row, field.String())
			field.Reset()
		case (c == '\n' || c == '\r') && !quoted:
			if pending() {
				endRow()
			}
			start = 0
			if crlf {
				i++
			}
			line++
		default:
			field.WriteRune(c)
			// Inside quotes a \r\n pair is counted at its \n.
			if c == '\n' || (c == '\r' && !crlf) {
				line++
			}
		}
	}

	if pending() {
		endRow()
	}
	return rows
}

func blank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
