package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yusrlabs/yusr/internal/app"
	"github.com/yusrlabs/yusr/internal/content"
	"github.com/yusrlabs/yusr/internal/sim"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps store and flow errors to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrIncorrectPin):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, app.ErrUnsupportedLanguage),
		errors.Is(err, app.ErrInvalidMode),
		errors.Is(err, app.ErrInvalidPin),
		errors.Is(err, app.ErrFontSizeRange):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, content.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sim.ErrCallInProgress), errors.Is(err, sim.ErrSendInProgress):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, sim.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
