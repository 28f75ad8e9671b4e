// Package sim runs the timed flows of the watch demo: the fake login
// delay, tawaf auto tracking, sheikh calls, and support message sending.
// Every flow is driven by a context and stops cleanly when the session
// closes; a cancelled delay fires nothing.
package sim

import (
	"context"
	"time"

	"github.com/yusrlabs/yusr/internal/app"
)

// Timing bundles the fixed delays of all simulated flows so tests can
// shrink them.
type Timing struct {
	LoginDelay     time.Duration
	LapInterval    time.Duration
	CallConnecting time.Duration
	CallTick       time.Duration
	SendDelay      time.Duration
	SentHold       time.Duration
}

// DefaultTiming is the demo cadence.
func DefaultTiming() Timing {
	return Timing{
		LoginDelay:     1500 * time.Millisecond,
		LapInterval:    5 * time.Second,
		CallConnecting: 2 * time.Second,
		CallTick:       time.Second,
		SendDelay:      2 * time.Second,
		SentHold:       2 * time.Second,
	}
}

// Login accepts any credentials after a fixed verification delay, marks
// the session onboarded, and lands it on the home screen.
func Login(ctx context.Context, store *app.Store, delay time.Duration) {
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return
	case <-t.C:
	}
	store.SetOnboarded(true)
	store.NavigateTo("home")
	store.Emit("loginComplete")
}

// RunAutoLap ticks at a fixed interval and counts a lap whenever auto
// tracking is on. The shared increment clamps at the final lap and turns
// tracking off, so a completed round never overcounts. Returns when ctx
// is cancelled.
func RunAutoLap(ctx context.Context, store *app.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if store.Snapshot().TawafActive {
				store.IncrementTawaf()
			}
		}
	}
}
