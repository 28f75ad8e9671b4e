package server

import (
	"net/http"

	"github.com/yusrlabs/yusr/internal/screen"
)

func handleScreen(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		view, err := router.Render(r.Context(), sess.Store)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

type NavigateRequest struct {
	Screen string `json:"screen"`
}

// handleNavigate sets the current screen and returns the resulting view.
// Unknown screen IDs are accepted; rendering falls back to welcome.
func handleNavigate(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NavigateRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Screen == "" {
			writeError(w, http.StatusBadRequest, "screen is required")
			return
		}

		sess := sessionFrom(r)
		sess.Store.NavigateTo(req.Screen)

		view, err := router.Render(r.Context(), sess.Store)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
