package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/erazemk/track/internal/app"
	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/derive"
	"github.com/erazemk/track/internal/imaging"
	"github.com/erazemk/track/internal/model"
	"github.com/erazemk/track/internal/query"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	App *app.App
}

// itemView is an item with its derived values as of today.
type itemView struct {
	model.Item
	UsageDays int             `json:"usageDays"`
	DailyCost decimal.Decimal `json:"dailyCost"`
	Duration  derive.Duration `json:"duration"`
	HasImage  bool            `json:"hasImage"`
}

func newItemView(it model.Item, ref date.Date, hasImage bool) itemView {
	m := derive.For(it, ref)
	return itemView{
		Item:      it,
		UsageDays: m.UsageDays,
		DailyCost: m.DailyCost.Round(2),
		Duration:  m.Duration,
		HasImage:  hasImage,
	}
}

// List handles GET /api/items?category=&status=&sort=&q=.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	order, _ := query.ParseOrder(params.Get("sort"))
	items := h.App.List(query.Criteria{
		Category: params.Get("category"),
		Status:   params.Get("status"),
	}, order)
	if q := params.Get("q"); q != "" {
		items = query.Search(items, q)
	}

	images, err := h.App.HasImages(r.Context())
	if err != nil {
		appError(w, err, "list items")
		return
	}

	today := h.App.Today()
	views := make([]itemView, 0, len(items))
	for _, it := range items {
		views = append(views, newItemView(it, today, images[it.ID]))
	}
	jsonResponse(w, http.StatusOK, views)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Item
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.App.Create(r.Context(), req)
	if err != nil {
		appError(w, err, "create item")
		return
	}

	jsonResponse(w, http.StatusCreated, newItemView(item, h.App.Today(), false))
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.App.Item(id)
	if err != nil {
		appError(w, err, "get item")
		return
	}

	hasImage, err := h.App.HasImage(r.Context(), id)
	if err != nil {
		appError(w, err, "get item")
		return
	}
	jsonResponse(w, http.StatusOK, newItemView(item, h.App.Today(), hasImage))
}

// Update handles PUT /api/items/{id}. Only the fields present in the body
// are changed.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var patch model.Patch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.App.Update(r.Context(), id, patch)
	if err != nil {
		appError(w, err, "update item")
		return
	}

	hasImage, err := h.App.HasImage(r.Context(), id)
	if err != nil {
		appError(w, err, "update item")
		return
	}
	jsonResponse(w, http.StatusOK, newItemView(item, h.App.Today(), hasImage))
}

// Delete handles DELETE /api/items/{id}. Deleting an unknown item succeeds.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.App.Delete(r.Context(), id); err != nil {
		appError(w, err, "delete item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// UploadImage handles PUT /api/items/{id}/image with a multipart "image" field.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxBytes+1<<20)
	if err := r.ParseMultipartForm(imaging.MaxBytes); err != nil {
		formError(w, err)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	if err := h.App.SetImage(r.Context(), id, file); err != nil {
		appError(w, err, "save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := h.App.Image(r.Context(), id)
	if err != nil {
		appError(w, err, "get image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(data)
}

// Categories handles GET /api/categories.
func (h *ItemsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.App.Categories()
	if categories == nil {
		categories = []string{}
	}
	jsonResponse(w, http.StatusOK, categories)
}
