package server

import (
	"net/http"

	"github.com/yusrlabs/yusr/internal/screen"
)

func handleTawafIncrement(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		sess.Store.IncrementTawaf()
		renderView(w, r, router)
	}
}

func handleTawafReset(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		sess.Store.ResetTawaf()
		renderView(w, r, router)
	}
}

func handleTawafToggle(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		sess.Store.ToggleTawafActive()
		renderView(w, r, router)
	}
}

type TaskToggleRequest struct {
	TaskID string `json:"taskId"`
}

func handleTaskToggle(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TaskToggleRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.TaskID == "" {
			writeError(w, http.StatusBadRequest, "taskId is required")
			return
		}

		sess := sessionFrom(r)
		sess.Store.ToggleTask(req.TaskID)
		renderView(w, r, router)
	}
}

// renderView renders the session's current screen after a mutation.
func renderView(w http.ResponseWriter, r *http.Request, router *screen.Router) {
	sess := sessionFrom(r)
	view, err := router.Render(r.Context(), sess.Store)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
