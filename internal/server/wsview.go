package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/yusrlabs/yusr/internal/screen"
	"github.com/yusrlabs/yusr/internal/session"
)

// handleWSView upgrades to a WebSocket and pushes the freshly rendered
// current view after every state change, starting with the view at
// connect time.
func handleWSView(logger *slog.Logger, sessions *session.Registry, router *screen.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessions.Get(chi.URLParam(r, "session"))
		if err != nil {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx := r.Context()
		ch := sess.Store.Subscribe()
		defer sess.Store.Unsubscribe(ch)

		push := func() error {
			view, err := router.Render(ctx, sess.Store)
			if err != nil {
				return err
			}
			return wsjson.Write(ctx, conn, view)
		}

		if err := push(); err != nil {
			logger.Debug("websocket initial push failed", "error", err)
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-sess.Context().Done():
				conn.Close(websocket.StatusNormalClosure, "session closed")
				return
			case <-ch:
				if err := push(); err != nil {
					logger.Debug("websocket push failed", "error", err)
					return
				}
			}
		}
	}
}
