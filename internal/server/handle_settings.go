package server

import (
	"net/http"

	"github.com/yusrlabs/yusr/internal/app"
	"github.com/yusrlabs/yusr/internal/i18n"
	"github.com/yusrlabs/yusr/internal/screen"
	"github.com/yusrlabs/yusr/internal/sim"
)

type ModeRequest struct {
	Mode app.UserMode `json:"mode"`
}

// handleMode picks the user mode and moves the session to the login
// screen, mirroring the onboarding order of the watch.
func handleMode(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ModeRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		if err := sess.Store.SelectUserMode(req.Mode); err != nil {
			writeDomainError(w, err)
			return
		}
		sess.Store.NavigateTo("login")

		view, err := router.Render(r.Context(), sess.Store)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin accepts any credentials and starts the simulated
// verification delay in the background; the session lands on home when it
// fires.
func handleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		go sim.Login(sess.Context(), sess.Store, sess.Timing.LoginDelay)

		writeJSON(w, http.StatusAccepted, map[string]string{"status": "verifying"})
	}
}

type LanguageRequest struct {
	Language i18n.Language `json:"language"`
}

func handleLanguage(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LanguageRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		if err := sess.Store.SetLanguage(req.Language); err != nil {
			writeDomainError(w, err)
			return
		}

		view, err := router.Render(r.Context(), sess.Store)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func handleDarkModeToggle(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		sess.Store.ToggleDarkMode()

		view, err := router.Render(r.Context(), sess.Store)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

type FontSizeRequest struct {
	Size int `json:"size"`
}

func handleFontSize(router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FontSizeRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		if err := sess.Store.SetGlobalFontSize(req.Size); err != nil {
			writeDomainError(w, err)
			return
		}

		view, err := router.Render(r.Context(), sess.Store)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

type PinRequest struct {
	Pin string `json:"pin"`
}

func handleSetPin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PinRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r)
		if err := sess.Store.SetPin(req.Pin); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
