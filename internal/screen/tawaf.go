package screen

import (
	"context"

	"github.com/yusrlabs/yusr/internal/app"
)

type tawafBody struct {
	Count       int     `json:"count"`
	Total       int     `json:"total"`
	Remaining   int     `json:"remaining"`
	Progress    float64 `json:"progress"`
	Complete    bool    `json:"complete"`
	Active      bool    `json:"active"`
	StatusLabel string  `json:"statusLabel"`
	ActionLabel string  `json:"actionLabel"`
	ResetLabel  string  `json:"resetLabel"`
	AutoLabel   string  `json:"autoLabel"`
}

func renderTawaf(_ context.Context, rc renderContext) (any, error) {
	s := rc.state

	statusKey := "remaining"
	if app.TawafComplete(s) {
		statusKey = "completed"
	}
	actionKey := "startTawaf"
	if s.TawafActive {
		actionKey = "stopTawaf"
	}

	return tawafBody{
		Count:       s.TawafCount,
		Total:       app.TawafLaps,
		Remaining:   app.TawafRemaining(s),
		Progress:    app.TawafProgress(s),
		Complete:    app.TawafComplete(s),
		Active:      s.TawafActive,
		StatusLabel: rc.t(statusKey),
		ActionLabel: rc.t(actionKey),
		ResetLabel:  rc.t("reset"),
		AutoLabel:   rc.t("autoTracking"),
	}, nil
}
