package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yusrlabs/yusr/internal/app"
)

// fastTiming keeps test runs short.
func fastTiming() Timing {
	return Timing{
		LoginDelay:     5 * time.Millisecond,
		LapInterval:    5 * time.Millisecond,
		CallConnecting: 5 * time.Millisecond,
		CallTick:       5 * time.Millisecond,
		SendDelay:      5 * time.Millisecond,
		SentHold:       5 * time.Millisecond,
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if cond() {
			return
		}
		select {
		case <-deadline:
			t.Fatal("condition not reached in time")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestLogin(t *testing.T) {
	store := app.NewStore()
	Login(context.Background(), store, fastTiming().LoginDelay)

	s := store.Snapshot()
	if !s.Onboarded || s.CurrentScreen != "home" {
		t.Errorf("after login: onboarded %v screen %s", s.Onboarded, s.CurrentScreen)
	}
}

func TestLoginCancelled(t *testing.T) {
	store := app.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	Login(ctx, store, time.Hour)

	if s := store.Snapshot(); s.Onboarded || s.CurrentScreen != "welcome" {
		t.Errorf("cancelled login mutated state: %+v", s)
	}
}

func TestAutoLapCountsWhileActive(t *testing.T) {
	store := app.NewStore()
	store.ToggleTawafActive()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go RunAutoLap(ctx, store, fastTiming().LapInterval)

	waitFor(t, func() bool { return store.Snapshot().TawafCount >= app.TawafLaps })

	s := store.Snapshot()
	if s.TawafCount != app.TawafLaps {
		t.Errorf("count = %d, want %d", s.TawafCount, app.TawafLaps)
	}
	if s.TawafActive {
		t.Error("tracking should stop at the final lap")
	}

	// Completed counter must not move again.
	time.Sleep(30 * time.Millisecond)
	if got := store.Snapshot().TawafCount; got != app.TawafLaps {
		t.Errorf("count moved past completion: %d", got)
	}
}

func TestAutoLapIdleWhenInactive(t *testing.T) {
	store := app.NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go RunAutoLap(ctx, store, fastTiming().LapInterval)

	time.Sleep(30 * time.Millisecond)
	if got := store.Snapshot().TawafCount; got != 0 {
		t.Errorf("count = %d with tracking off", got)
	}
}

func TestCallLifecycle(t *testing.T) {
	store := app.NewStore()
	call := NewCall(store, fastTiming())

	if err := call.Start(context.Background(), "2"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if st := call.Status(); st.State != CallConnecting || st.SheikhID != "2" {
		t.Errorf("status = %+v, want connecting to 2", st)
	}

	if err := call.Start(context.Background(), "3"); !errors.Is(err, ErrCallInProgress) {
		t.Errorf("second start err = %v, want ErrCallInProgress", err)
	}

	waitFor(t, func() bool { return call.Status().State == CallConnected })
	waitFor(t, func() bool { return call.Status().Duration >= 2 })

	call.End()
	if st := call.Status(); st.State != CallIdle || st.Duration != 0 {
		t.Errorf("after end: %+v", st)
	}

	// Ended call can be restarted.
	if err := call.Start(context.Background(), "1"); err != nil {
		t.Errorf("restart: %v", err)
	}
	call.End()
}

func TestCallCancelledByContext(t *testing.T) {
	store := app.NewStore()
	call := NewCall(store, fastTiming())

	ctx, cancel := context.WithCancel(context.Background())
	if err := call.Start(ctx, "1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	waitFor(t, func() bool { return call.Status().State == CallConnected })

	before := call.Status().Duration
	cancel()
	time.Sleep(30 * time.Millisecond)
	after := call.Status().Duration
	if after > before+1 {
		t.Errorf("duration kept ticking after cancel: %d -> %d", before, after)
	}
}

func TestMessengerLifecycle(t *testing.T) {
	store := app.NewStore()
	m := NewMessenger(store, fastTiming())

	if err := m.Send(context.Background(), "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("blank send err = %v, want ErrEmptyMessage", err)
	}

	if err := m.Send(context.Background(), "I lost my group"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if m.State() != MessageSending {
		t.Errorf("state = %s, want sending", m.State())
	}
	if err := m.Send(context.Background(), "again"); !errors.Is(err, ErrSendInProgress) {
		t.Errorf("double send err = %v, want ErrSendInProgress", err)
	}

	waitFor(t, func() bool { return m.State() == MessageSent })
	waitFor(t, func() bool { return m.State() == MessageIdle })

	// Idle again means a new send is accepted.
	if err := m.Send(context.Background(), "hello"); err != nil {
		t.Errorf("send after reset: %v", err)
	}
}

func TestFlowsPublishEvents(t *testing.T) {
	store := app.NewStore()
	events := store.Subscribe()
	defer store.Unsubscribe(events)

	call := NewCall(store, fastTiming())
	if err := call.Start(context.Background(), "1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer call.End()

	seen := map[string]bool{}
	deadline := time.After(2 * time.Second)
	for !seen["callConnecting"] || !seen["callConnected"] || !seen["callTick"] {
		select {
		case ev := <-events:
			seen[ev.Op] = true
		case <-deadline:
			t.Fatalf("missing events, saw %v", seen)
		}
	}
}
