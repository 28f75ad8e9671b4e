package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yusrlabs/yusr/internal/screen"
	"github.com/yusrlabs/yusr/internal/session"
)

type SessionResponse struct {
	ID   string      `json:"id"`
	View screen.View `json:"view"`
}

func handleCreateSession(sessions *session.Registry, router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessions.Create(r.Context())

		view, err := router.Render(r.Context(), sess.Store)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, SessionResponse{ID: sess.ID, View: view})
	}
}

func handleDeleteSession(sessions *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Delete(chi.URLParam(r, "session")); err != nil {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
