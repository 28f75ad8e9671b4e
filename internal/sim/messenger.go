package sim

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/yusrlabs/yusr/internal/app"
)

// Message states.
type MessageState string

const (
	MessageIdle    MessageState = "idle"
	MessageSending MessageState = "sending"
	MessageSent    MessageState = "sent"
)

var (
	// ErrEmptyMessage rejects blank support messages.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrSendInProgress rejects a send while one is still running.
	ErrSendInProgress = errors.New("send already in progress")
)

// Messenger simulates sending a support message: a fixed sending delay,
// a sent confirmation held briefly, then back to idle.
type Messenger struct {
	store  *app.Store
	timing Timing

	mu    sync.Mutex
	state MessageState
}

func NewMessenger(store *app.Store, timing Timing) *Messenger {
	return &Messenger{store: store, timing: timing, state: MessageIdle}
}

// State returns the current send state.
func (m *Messenger) State() MessageState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Send starts the mock delivery of text. The message content goes
// nowhere; only the state transitions matter.
func (m *Messenger) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	m.mu.Lock()
	if m.state != MessageIdle {
		m.mu.Unlock()
		return ErrSendInProgress
	}
	m.state = MessageSending
	m.mu.Unlock()

	m.store.Emit("messageSending")
	go m.run(ctx)
	return nil
}

func (m *Messenger) run(ctx context.Context) {
	if !m.wait(ctx, m.timing.SendDelay) {
		m.reset()
		return
	}
	m.mu.Lock()
	m.state = MessageSent
	m.mu.Unlock()
	m.store.Emit("messageSent")

	if !m.wait(ctx, m.timing.SentHold) {
		m.reset()
		return
	}
	m.reset()
	m.store.Emit("messageReset")
}

func (m *Messenger) wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (m *Messenger) reset() {
	m.mu.Lock()
	m.state = MessageIdle
	m.mu.Unlock()
}
