package server

import (
	"errors"
	"net/http"

	"github.com/yusrlabs/yusr/internal/content"
)

type CallRequest struct {
	SheikhID string `json:"sheikhId"`
}

// handleCallStart rings a sheikh. The sheikh must exist and be marked
// available; the call then runs its simulated lifecycle in the
// background.
func handleCallStart(contentStore *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CallRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sh, err := contentStore.SheikhByID(r.Context(), req.SheikhID)
		if errors.Is(err, content.ErrNotFound) {
			writeError(w, http.StatusNotFound, "sheikh not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !sh.Available {
			writeError(w, http.StatusConflict, "sheikh is busy")
			return
		}

		sess := sessionFrom(r)
		if err := sess.Call.Start(sess.Context(), sh.ID); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, sess.Call.Status())
	}
}

func handleCallStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		writeJSON(w, http.StatusOK, sess.Call.Status())
	}
}

func handleCallEnd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		sess.Call.End()
		writeJSON(w, http.StatusOK, sess.Call.Status())
	}
}

type SupportMessageRequest struct {
	Message string `json:"message"`
}

type SupportMessageResponse struct {
	State string `json:"state"`
}

func handleSupportMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SupportMessageRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		if err := sess.Messenger.Send(sess.Context(), req.Message); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, SupportMessageResponse{State: string(sess.Messenger.State())})
	}
}
