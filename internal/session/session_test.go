package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yusrlabs/yusr/internal/sim"
)

func fastTiming() sim.Timing {
	return sim.Timing{
		LoginDelay:     time.Millisecond,
		LapInterval:    time.Millisecond,
		CallConnecting: time.Millisecond,
		CallTick:       time.Millisecond,
		SendDelay:      time.Millisecond,
		SentHold:       time.Millisecond,
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(fastTiming())
	defer r.Close()

	s := r.Create(context.Background())
	if s.ID == "" {
		t.Fatal("empty session ID")
	}

	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != s {
		t.Error("get returned a different session")
	}

	if _, err := r.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown get err = %v, want ErrNotFound", err)
	}

	if err := r.Delete(s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted session still resolvable: %v", err)
	}
	if err := r.Delete(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}

	select {
	case <-s.Context().Done():
	case <-time.After(time.Second):
		t.Error("session context not cancelled on delete")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	r := NewRegistry(fastTiming())
	defer r.Close()

	a := r.Create(context.Background())
	b := r.Create(context.Background())
	if a.ID == b.ID {
		t.Fatal("duplicate session IDs")
	}

	a.Store.NavigateTo("tawaf")
	a.Store.IncrementTawaf()

	if got := b.Store.Snapshot(); got.TawafCount != 0 || got.CurrentScreen != "welcome" {
		t.Errorf("session b leaked state from a: %+v", got)
	}
}

func TestSessionOutlivesCreateRequest(t *testing.T) {
	r := NewRegistry(fastTiming())
	defer r.Close()

	reqCtx, cancel := context.WithCancel(context.Background())
	s := r.Create(reqCtx)
	cancel()

	select {
	case <-s.Context().Done():
		t.Error("session died with the creating request")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestAutoLapRunsPerSession(t *testing.T) {
	r := NewRegistry(fastTiming())
	defer r.Close()

	s := r.Create(context.Background())
	s.Store.ToggleTawafActive()

	deadline := time.After(2 * time.Second)
	for s.Store.Snapshot().TawafCount == 0 {
		select {
		case <-deadline:
			t.Fatal("auto lap never counted")
		case <-time.After(time.Millisecond):
		}
	}
}
