package model

import (
	"github.com/shopspring/decimal"

	"github.com/erazemk/track/internal/date"
)

// Patch holds the fields of an item to replace. Nil fields are left alone.
type Patch struct {
	Name         *string          `json:"name,omitempty"`
	PurchaseDate *date.Date       `json:"purchaseDate,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Tags         *[]string        `json:"tags,omitempty"`
	Status       *Status          `json:"status,omitempty"`
	SoldPrice    *decimal.Decimal `json:"soldPrice,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// Replace builds a patch that overwrites every field with the values of it.
func Replace(it Item) Patch {
	tags := append([]string(nil), it.Tags...)
	return Patch{
		Name:         &it.Name,
		PurchaseDate: &it.PurchaseDate,
		Price:        &it.Price,
		Category:     &it.Category,
		Tags:         &tags,
		Status:       &it.Status,
		SoldPrice:    &it.SoldPrice,
		Notes:        &it.Notes,
	}
}

// Apply returns it with the patch merged in. The sold price is zeroed
// whenever the resulting status is not sold.
func (p Patch) Apply(it Item) Item {
	it = it.Clone()
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.PurchaseDate != nil {
		it.PurchaseDate = *p.PurchaseDate
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Tags != nil {
		it.Tags = CleanTags(*p.Tags)
	}
	if p.Status != nil {
		it.Status = *p.Status
	}
	if p.SoldPrice != nil {
		it.SoldPrice = *p.SoldPrice
	}
	if p.Notes != nil {
		it.Notes = *p.Notes
	}
	if it.Status != StatusSold {
		it.SoldPrice = decimal.Zero
	}
	return it
}
