// Package csvcodec converts items to and from CSV files.
package csvcodec

import (
	"strings"

	"github.com/erazemk/track/internal/model"
)

// NumColumns is the number of columns in the file format, in the order
// name, purchase date, price, category, tags, status, sold price, notes.
const NumColumns = 8

// Labels are the presentation strings used in a CSV file: the header
// titles and the status names.
type Labels struct {
	Columns [NumColumns]string
	Status  map[model.Status]string
}

// StatusLabel returns the label for st, or st itself if it has none.
func (l Labels) StatusLabel(st model.Status) string {
	if s, ok := l.Status[st]; ok {
		return s
	}
	return string(st)
}

// StatusFromLabel maps a status label back to a status using every label
// set given. Bare status names are accepted as well. Unknown labels map to
// active.
func StatusFromLabel(label string, sets ...Labels) model.Status {
	label = strings.TrimSpace(label)
	for _, l := range sets {
		for st, s := range l.Status {
			if s == label {
				return st
			}
		}
	}
	return model.ParseStatus(label)
}
