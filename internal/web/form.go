package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/i18n"
	"github.com/erazemk/track/internal/model"
)

// itemForm holds the raw values of the item form so they can be shown
// again after a failed submit.
type itemForm struct {
	Name         string
	PurchaseDate string
	Price        string
	Category     string
	Tags         string
	Status       string
	SoldPrice    string
	Notes        string
}

func formFromItem(it model.Item) itemForm {
	f := itemForm{
		Name:         it.Name,
		PurchaseDate: it.PurchaseDate.String(),
		Price:        it.Price.String(),
		Category:     it.Category,
		Tags:         model.JoinTags(it.Tags),
		Status:       string(it.Status),
		Notes:        it.Notes,
	}
	if it.Status == model.StatusSold {
		f.SoldPrice = it.SoldPrice.String()
	}
	return f
}

func readItemForm(r *http.Request) itemForm {
	return itemForm{
		Name:         r.FormValue("name"),
		PurchaseDate: r.FormValue("purchaseDate"),
		Price:        r.FormValue("price"),
		Category:     r.FormValue("category"),
		Tags:         r.FormValue("tags"),
		Status:       r.FormValue("status"),
		SoldPrice:    r.FormValue("soldPrice"),
		Notes:        r.FormValue("notes"),
	}
}

// item converts the form into an item. Only the parsing errors are
// reported here; the rest is left to Item.Validate.
func (f itemForm) item() (model.Item, error) {
	it := model.Item{
		Name:     f.Name,
		Category: f.Category,
		Tags:     model.SplitTags(f.Tags),
		Status:   model.Status(f.Status),
		Notes:    f.Notes,
	}
	if it.Status == "" {
		it.Status = model.StatusActive
	}

	if strings.TrimSpace(f.PurchaseDate) != "" {
		d, err := date.Parse(f.PurchaseDate)
		if err != nil {
			return it, model.ErrPurchaseDateRequired
		}
		it.PurchaseDate = d
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil {
		return it, model.ErrInvalidPrice
	}
	it.Price = price

	if it.Status == model.StatusSold && strings.TrimSpace(f.SoldPrice) != "" {
		sold, err := decimal.NewFromString(strings.TrimSpace(f.SoldPrice))
		if err != nil {
			return it, model.ErrInvalidSoldPrice
		}
		it.SoldPrice = sold
	}
	return it, nil
}

var errorKeys = []struct {
	err error
	key string
}{
	{model.ErrNameRequired, "ErrNameRequired"},
	{model.ErrPurchaseDateRequired, "ErrPurchaseDateRequired"},
	{model.ErrPurchaseDateInFuture, "ErrPurchaseDateInFuture"},
	{model.ErrInvalidPrice, "ErrInvalidPrice"},
	{model.ErrInvalidSoldPrice, "ErrInvalidSoldPrice"},
	{model.ErrInvalidStatus, "ErrInvalidStatus"},
}

// errorMessage returns the translated message for a validation error,
// or "" if err is not one.
func errorMessage(lang string, err error) string {
	for _, e := range errorKeys {
		if errors.Is(err, e.err) {
			return i18n.T(lang, e.key)
		}
	}
	return ""
}
