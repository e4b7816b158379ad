package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/erazemk/track/internal/date"
)

// Status is the lifecycle stage of an item.
type Status string

// Item statuses.
const (
	StatusActive  Status = "active"
	StatusRetired Status = "retired"
	StatusSold    Status = "sold"
)

// Statuses lists all statuses in display order.
var Statuses = []Status{StatusActive, StatusRetired, StatusSold}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusRetired, StatusSold:
		return true
	}
	return false
}

// ParseStatus returns the status named s, or StatusActive if s is unknown.
func ParseStatus(s string) Status {
	if st := Status(strings.TrimSpace(s)); st.Valid() {
		return st
	}
	return StatusActive
}

// Item represents a tracked possession.
type Item struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	PurchaseDate date.Date       `json:"purchaseDate"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Tags         []string        `json:"tags"`
	Status       Status          `json:"status"`
	SoldPrice    decimal.Decimal `json:"soldPrice"`
	Notes        string          `json:"notes"`
}

// Clone returns a copy of the item that shares no memory with it.
func (it Item) Clone() Item {
	if it.Tags != nil {
		it.Tags = append([]string(nil), it.Tags...)
	}
	return it
}

// Validation errors for manually entered items.
var (
	ErrNameRequired         = errors.New("name is required")
	ErrPurchaseDateRequired = errors.New("purchase date is required")
	ErrPurchaseDateInFuture = errors.New("purchase date cannot be in the future")
	ErrInvalidPrice         = errors.New("price must be greater than zero")
	ErrInvalidSoldPrice     = errors.New("sold price cannot be negative")
	ErrInvalidStatus        = errors.New("invalid status")
)

// Validate checks an item entered through a form or the API.
// Imports use a looser check, see the csvcodec package.
func (it Item) Validate(today date.Date) error {
	if strings.TrimSpace(it.Name) == "" {
		return ErrNameRequired
	}
	if it.PurchaseDate.IsZero() {
		return ErrPurchaseDateRequired
	}
	if it.PurchaseDate.After(today) {
		return ErrPurchaseDateInFuture
	}
	if !it.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if it.SoldPrice.IsNegative() {
		return ErrInvalidSoldPrice
	}
	if !it.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Normalize trims text fields, defaults the status and drops a sold price
// that has no meaning for the item's status.
func (it *Item) Normalize() {
	it.Name = strings.TrimSpace(it.Name)
	it.Category = strings.TrimSpace(it.Category)
	it.Notes = strings.TrimSpace(it.Notes)
	it.Tags = CleanTags(it.Tags)
	if it.Status == "" {
		it.Status = StatusActive
	}
	if it.Status != StatusSold {
		it.SoldPrice = decimal.Zero
	}
}

// SplitTags splits a comma separated list, dropping blank entries.
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return CleanTags(strings.Split(s, ","))
}

// CleanTags trims every tag and drops empty ones. Order and duplicates are kept.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinTags is the inverse of SplitTags for tags without commas.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
