package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/yusrlabs/yusr/internal/content"
	"github.com/yusrlabs/yusr/internal/screen"
	"github.com/yusrlabs/yusr/internal/session"
)

func addRoutes(r chi.Router, logger *slog.Logger, db *sql.DB, sessions *session.Registry, router *screen.Router, contentStore *content.Store) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Yusr Watch API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	r.Post("/api/sessions", handleCreateSession(sessions, router))

	// Session-scoped routes. {session} is resolved by sessionMiddleware.
	r.Route("/api/sessions/{session}", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))

		r.Delete("/", handleDeleteSession(sessions))
		r.Get("/screen", handleScreen(router))
		r.Post("/navigate", handleNavigate(router))

		r.Post("/mode", handleMode(router))
		r.Post("/login", handleLogin())
		r.Post("/language", handleLanguage(router))
		r.Post("/darkmode/toggle", handleDarkModeToggle(router))
		r.Post("/fontsize", handleFontSize(router))
		r.Post("/pin", handleSetPin())

		r.Post("/tawaf/increment", handleTawafIncrement(router))
		r.Post("/tawaf/reset", handleTawafReset(router))
		r.Post("/tawaf/toggle", handleTawafToggle(router))
		r.Post("/tasks/toggle", handleTaskToggle(router))

		r.Post("/wallet/pay", handleWalletPay(router))
		r.Post("/wallet/charge", handleWalletCharge(router))

		r.Post("/destination", handleSetDestination(contentStore, router))
		r.Delete("/destination", handleClearDestination(router))

		r.Post("/call", handleCallStart(contentStore))
		r.Get("/call", handleCallStatus())
		r.Post("/call/end", handleCallEnd())
		r.Post("/support/message", handleSupportMessage())

		r.Get("/events", handleEvents())
	})

	r.Get("/ws/{session}/view", handleWSView(logger, sessions, router))
}
