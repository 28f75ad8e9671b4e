package server

import (
	"errors"
	"net/http"

	"github.com/yusrlabs/yusr/internal/app"
	"github.com/yusrlabs/yusr/internal/content"
	"github.com/yusrlabs/yusr/internal/screen"
)

type DestinationRequest struct {
	ID string `json:"id"`
}

// handleSetDestination selects a landmark from the content store and
// moves the session to the route guidance screen.
func handleSetDestination(contentStore *content.Store, router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DestinationRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		d, err := contentStore.DestinationByID(r.Context(), req.ID)
		if errors.Is(err, content.ErrNotFound) {
			writeError(w, http.StatusNotFound, "destination not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		sess := sessionFrom(r)
		sess.Store.SetSelectedDestination(&app.Destination{
			ID:       d.ID,
			NameAr:   d.NameAr,
			NameEn:   d.NameEn,
			Distance: d.Distance,
			Time:     d.Time,
		})
		sess.Store.NavigateTo("route")
		renderView(w, r, router)
	}
}

// handleClearDestination drops the selection; a later route render
// bounces back to the picker.
func handleClearDestination(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		sess.Store.SetSelectedDestination(nil)
		renderView(w, r, router)
	}
}
