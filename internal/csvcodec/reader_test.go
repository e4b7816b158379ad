package csvcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRows(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{"simple", "a,b,c\n1,2,3", [][]string{{"a", "b", "c"}, {"1", "2", "3"}}},
		{"crlf", "a,b\r\n1,2\r\n", [][]string{{"a", "b"}, {"1", "2"}}},
		{"lone cr", "a,b\r1,2", [][]string{{"a", "b"}, {"1", "2"}}},
		{"quoted comma", `"a,b",c`, [][]string{{"a,b", "c"}}},
		{"doubled quote", `"say ""hi""",x`, [][]string{{`say "hi"`, "x"}}},
		{"embedded newline", "\"line1\nline2\",x\ny,z", [][]string{{"line1\nline2", "x"}, {"y", "z"}}},
		{"blank lines dropped", "a\n\n\nb\n", [][]string{{"a"}, {"b"}}},
		{"whitespace row dropped", "a,b\n  ,\t\nc,d", [][]string{{"a", "b"}, {"c", "d"}}},
		{"empty fields kept", "a,,c\n,x,", [][]string{{"a", "", "c"}, {"", "x", ""}}},
		{"trailing comma", "a,b,\n", [][]string{{"a", "b", ""}}},
		{"unicode", "电子,服役中", [][]string{{"电子", "服役中"}}},
		{"no input", "", nil},
		{"unterminated quote", `"abc,def`, [][]string{{"abc,def"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRows(tt.in))
		})
	}
}

func TestReadRowsLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"one per line", "a\nb\nc", []int{1, 2, 3}},
		{"blank lines", "a\n\n\nb", []int{1, 4}},
		{"crlf", "a\r\n\r\nb\r\n", []int{1, 3}},
		{"lone cr", "a\rb", []int{1, 2}},
		{"quoted newline", "\"x\ny\",1\nz", []int{1, 3}},
		{"quoted crlf", "\"x\r\ny\",1\r\nz", []int{1, 3}},
		{"whitespace row", "a\n  ,\nb", []int{1, 3}},
		{"empty quoted field alone", "\"\"\nb", []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for _, r := range ReadRows(tt.in) {
				got = append(got, r.Line)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEscape(t *testing.T) {
	tests := map[string]string{
		"plain":       "plain",
		"a,b":         `"a,b"`,
		`"quote"`:     `"""quote"""`,
		"two\nlines":  "\"two\nlines\"",
		"carriage\rx": "\"carriage\rx\"",
		"":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Escape(in), "Escape(%q)", in)
	}
}

func TestEscapedFieldsReparse(t *testing.T) {
	for _, s := range []string{"a,b", `"quote"`, "line1\nline2", `mixed, "all"` + "\nthree"} {
		rows := ParseRows(Escape(s) + ",end")
		if assert.Len(t, rows, 1) {
			assert.Equal(t, []string{s, "end"}, rows[0])
		}
	}
}
