package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/track/internal/app"
	"github.com/erazemk/track/internal/csvcodec"
	"github.com/erazemk/track/internal/imaging"
	"github.com/erazemk/track/internal/model"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

var badRequest = []error{
	model.ErrNameRequired,
	model.ErrPurchaseDateRequired,
	model.ErrPurchaseDateInFuture,
	model.ErrInvalidPrice,
	model.ErrInvalidSoldPrice,
	model.ErrInvalidStatus,
	csvcodec.ErrEmptyFile,
	imaging.ErrUnsupportedFormat,
	app.ErrInvalidPreference,
}

// appError writes the response for an error returned by the app layer.
func appError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, app.ErrNoData):
		jsonError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, imaging.ErrTooLarge):
		jsonError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	case bodyTooLarge(err):
		jsonError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	slog.Error("request failed", "action", action, "error", err)
	jsonError(w, http.StatusInternalServerError, "failed to "+action)
}

// formError writes the response for a failed ParseMultipartForm.
func formError(w http.ResponseWriter, err error) {
	if bodyTooLarge(err) {
		jsonError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	jsonError(w, http.StatusBadRequest, "invalid multipart form")
}

// bodyTooLarge reports whether err comes from an http.MaxBytesReader limit.
func bodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
