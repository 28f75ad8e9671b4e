package sim

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yusrlabs/yusr/internal/app"
)

// Call states.
type CallState string

const (
	CallIdle       CallState = "idle"
	CallConnecting CallState = "connecting"
	CallConnected  CallState = "connected"
)

// ErrCallInProgress is returned when a call is started while one is
// already connecting or connected.
var ErrCallInProgress = errors.New("call already in progress")

// CallStatus is the queryable shape of the current call.
type CallStatus struct {
	State    CallState `json:"state"`
	SheikhID string    `json:"sheikhId,omitempty"`
	Duration int       `json:"duration"`
}

// Call is the per-session mock sheikh call: connecting for a fixed delay,
// then connected with a one-second duration counter until ended or the
// session closes.
type Call struct {
	store  *app.Store
	timing Timing

	mu     sync.Mutex
	status CallStatus
	cancel context.CancelFunc
}

func NewCall(store *app.Store, timing Timing) *Call {
	return &Call{
		store:  store,
		timing: timing,
		status: CallStatus{State: CallIdle},
	}
}

// Start begins a call to sheikhID. Only one call runs at a time.
func (c *Call) Start(ctx context.Context, sheikhID string) error {
	c.mu.Lock()
	if c.status.State != CallIdle {
		c.mu.Unlock()
		return ErrCallInProgress
	}
	ctx, cancel := context.WithCancel(ctx)
	c.status = CallStatus{State: CallConnecting, SheikhID: sheikhID}
	c.cancel = cancel
	c.mu.Unlock()

	c.store.Emit("callConnecting")
	go c.run(ctx)
	return nil
}

// Status returns the current call snapshot.
func (c *Call) Status() CallStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// End hangs up. A no-op when no call is running.
func (c *Call) End() {
	c.mu.Lock()
	cancel := c.cancel
	ended := c.status.State != CallIdle
	c.status = CallStatus{State: CallIdle}
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if ended {
		c.store.Emit("callEnded")
	}
}

func (c *Call) run(ctx context.Context) {
	connect := time.NewTimer(c.timing.CallConnecting)
	defer connect.Stop()
	select {
	case <-ctx.Done():
		return
	case <-connect.C:
	}

	c.mu.Lock()
	if c.status.State != CallConnecting {
		c.mu.Unlock()
		return
	}
	c.status.State = CallConnected
	c.mu.Unlock()
	c.store.Emit("callConnected")

	ticker := time.NewTicker(c.timing.CallTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.status.State != CallConnected {
				c.mu.Unlock()
				return
			}
			c.status.Duration++
			c.mu.Unlock()
			c.store.Emit("callTick")
		}
	}
}
