package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/erazemk/track/internal/app"
	"github.com/erazemk/track/internal/i18n"
)

// maxImportSize caps the size of an uploaded CSV file.
const maxImportSize = 10 << 20

// DataHandler serves statistics and CSV import/export.
type DataHandler struct {
	App *app.App
}

// Statistics handles GET /api/statistics.
func (h *DataHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.App.Statistics())
}

// Export handles GET /api/export?lang=.
func (h *DataHandler) Export(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if !i18n.Supported(lang) {
		lang = h.App.Language(r.Context(), r.Header.Get("Accept-Language"))
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", app.ExportFilename(h.App.Today())))
	if err := h.App.Export(w, lang); err != nil {
		w.Header().Del("Content-Disposition")
		appError(w, err, "export items")
	}
}

type rowErrorResponse struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type importResponse struct {
	Imported int                `json:"imported"`
	Errors   []rowErrorResponse `json:"errors"`
}

// Import handles POST /api/import. The CSV is read from a multipart "file"
// field or, for other content types, from the request body.
func (h *DataHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	var src io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			formError(w, err)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			jsonError(w, http.StatusBadRequest, "csv file required")
			return
		}
		defer file.Close()
		src = file
	}

	report, err := h.App.Import(r.Context(), src)
	if err != nil && !errors.Is(err, app.ErrNoValidRows) {
		appError(w, err, "import items")
		return
	}

	resp := importResponse{Errors: []rowErrorResponse{}}
	for _, rowErr := range report.Errors {
		resp.Errors = append(resp.Errors, rowErrorResponse{Row: rowErr.Row, Error: rowErr.Err.Error()})
	}
	if err != nil {
		jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  err.Error(),
			"errors": resp.Errors,
		})
		return
	}
	resp.Imported = len(report.Imported)
	jsonResponse(w, http.StatusOK, resp)
}
