package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/track/internal/app"
	"github.com/erazemk/track/internal/imaging"
	"github.com/erazemk/track/internal/model"
)

type itemPage struct {
	PageData
	ID       int64
	Form     itemForm
	Statuses []model.Status
	HasImage bool
	MaxDate  string
}

func (s *Server) renderItemForm(w http.ResponseWriter, r *http.Request, id int64, form itemForm, errMsg string) {
	title := "add"
	hasImage := false
	if id != 0 {
		title = "save"
		var err error
		if hasImage, err = s.App.HasImage(r.Context(), id); err != nil {
			slog.Error("failed to check item photo", "id", id, "error", err)
		}
	}
	pd := s.page(r, title, "add")
	status := http.StatusOK
	if errMsg != "" {
		pd.Error = errMsg
		status = http.StatusBadRequest
	}

	s.Templates.RenderStatus(w, status, "item_form.html", &itemPage{
		PageData: pd,
		ID:       id,
		Form:     form,
		Statuses: model.Statuses,
		HasImage: hasImage,
		MaxDate:  s.App.Today().String(),
	})
}

// ItemNewPage handles GET /items/new.
func (s *Server) ItemNewPage(w http.ResponseWriter, r *http.Request) {
	form := itemForm{PurchaseDate: s.App.Today().String(), Status: string(model.StatusActive)}
	s.renderItemForm(w, r, 0, form, "")
}

// ItemCreateSubmit handles POST /items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	lang := GetPreferences(r.Context()).Language
	form := readItemForm(r)

	it, err := form.item()
	if err == nil {
		_, err = s.App.Create(r.Context(), it)
	}
	if err != nil {
		if msg := errorMessage(lang, err); msg != "" {
			s.renderItemForm(w, r, 0, form, msg)
			return
		}
		slog.Error("failed to create item", "error", err)
		http.Error(w, "failed to create item", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/?flash=addSuccess", http.StatusSeeOther)
}

// ItemEditPage handles GET /items/{id}.
func (s *Server) ItemEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := s.App.Item(id)
	if err != nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	s.renderItemForm(w, r, id, formFromItem(item), "")
}

// ItemUpdateSubmit handles POST /items/{id}.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	lang := GetPreferences(r.Context()).Language
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	form := readItemForm(r)
	it, err := form.item()
	if err == nil {
		_, err = s.App.Update(r.Context(), id, model.Replace(it))
	}
	switch {
	case err == nil:
	case errors.Is(err, app.ErrNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
		return
	case errorMessage(lang, err) != "":
		s.renderItemForm(w, r, id, form, errorMessage(lang, err))
		return
	default:
		slog.Error("failed to update item", "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/?flash=editSuccess", http.StatusSeeOther)
}

// ItemDeleteSubmit handles POST /items/{id}/delete.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := s.App.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete item", "error", err)
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/?flash=deleteSuccess", http.StatusSeeOther)
}

// ItemImageSubmit handles POST /items/{id}/image.
func (s *Server) ItemImageSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxBytes+1<<20)
	if err := r.ParseMultipartForm(imaging.MaxBytes); err != nil {
		http.Error(w, "file too large", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	switch err := s.App.SetImage(r.Context(), id, file); {
	case err == nil:
	case errors.Is(err, app.ErrNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
		return
	case errors.Is(err, imaging.ErrUnsupportedFormat), errors.Is(err, imaging.ErrTooLarge):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	default:
		slog.Error("failed to save image", "error", err)
		http.Error(w, "failed to save image", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/items/%d", id), http.StatusSeeOther)
}

// ItemImageGet handles GET /items/{id}/image.
func (s *Server) ItemImageGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	data, mime, err := s.App.Image(r.Context(), id)
	if errors.Is(err, app.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to get image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
