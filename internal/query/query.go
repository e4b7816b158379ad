// Package query selects and orders items for display.
// All functions return new slices and never modify their input.
package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/derive"
	"github.com/erazemk/track/internal/model"
)

// All disables a filter.
const All = "all"

// Criteria restricts items by category and status. Empty values and All
// match everything; the two filters combine with AND.
type Criteria struct {
	Category string
	Status   string
}

func (c Criteria) matches(it model.Item) bool {
	if c.Category != "" && c.Category != All && it.Category != c.Category {
		return false
	}
	if c.Status != "" && c.Status != All && string(it.Status) != c.Status {
		return false
	}
	return true
}

// Filter returns the items matching c, in their original order.
func Filter(items []model.Item, c Criteria) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if c.matches(it) {
			out = append(out, it)
		}
	}
	return out
}

// Search returns the items whose name, category, tags or notes contain q,
// ignoring case. An empty query matches nothing.
func Search(items []model.Item, q string) []model.Item {
	q = strings.ToLower(strings.TrimSpace(q))
	out := []model.Item{}
	if q == "" {
		return out
	}
	for _, it := range items {
		if matchesText(it, q) {
			out = append(out, it)
		}
	}
	return out
}

func matchesText(it model.Item, q string) bool {
	if strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Category), q) ||
		strings.Contains(strings.ToLower(it.Notes), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Field is a sort key.
type Field string

// Sort fields.
const (
	ByAddTime      Field = "addTime"
	ByPurchaseDate Field = "purchaseDate"
	ByPrice        Field = "price"
	ByDailyCost    Field = "dailyCost"
	ByUsageDays    Field = "usageDays"
)

// Fields lists the sort fields in menu order.
var Fields = []Field{ByAddTime, ByPurchaseDate, ByPrice, ByDailyCost, ByUsageDays}

// Direction is a sort direction.
type Direction string

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order is a field and direction, written "field-direction".
type Order struct {
	Field     Field
	Direction Direction
}

// DefaultOrder lists the most recently added items first.
var DefaultOrder = Order{Field: ByAddTime, Direction: Desc}

func (o Order) String() string { return string(o.Field) + "-" + string(o.Direction) }

// Orders lists every field in both directions, descending first.
func Orders() []Order {
	out := make([]Order, 0, 2*len(Fields))
	for _, f := range Fields {
		out = append(out, Order{f, Desc}, Order{f, Asc})
	}
	return out
}

// ParseOrder parses "price-desc" style keys. Unknown keys yield
// DefaultOrder and false.
func ParseOrder(s string) (Order, bool) {
	field, dir, ok := strings.Cut(s, "-")
	if !ok {
		return DefaultOrder, false
	}
	o := Order{Field: Field(field), Direction: Direction(dir)}
	if !slices.Contains(Fields, o.Field) || (o.Direction != Asc && o.Direction != Desc) {
		return DefaultOrder, false
	}
	return o, true
}

// Sort returns a copy of items ordered by o. Ties keep their input order.
// Derived fields are computed against ref.
func Sort(items []model.Item, o Order, ref date.Date) []model.Item {
	out := slices.Clone(items)
	compare := comparator(o.Field, ref)
	slices.SortStableFunc(out, func(a, b model.Item) int {
		c := compare(a, b)
		if o.Direction == Desc {
			return -c
		}
		return c
	})
	return out
}

func comparator(f Field, ref date.Date) func(a, b model.Item) int {
	switch f {
	case ByPurchaseDate:
		return func(a, b model.Item) int { return a.PurchaseDate.Compare(b.PurchaseDate) }
	case ByPrice:
		return func(a, b model.Item) int { return a.Price.Cmp(b.Price) }
	case ByDailyCost:
		return func(a, b model.Item) int {
			return derive.DailyCost(a, ref).Cmp(derive.DailyCost(b, ref))
		}
	case ByUsageDays:
		return func(a, b model.Item) int {
			return cmp.Compare(derive.UsageDays(a.PurchaseDate, ref), derive.UsageDays(b.PurchaseDate, ref))
		}
	default:
		return func(a, b model.Item) int { return cmp.Compare(a.ID, b.ID) }
	}
}
