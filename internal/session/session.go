// Package session owns the per-watch sessions: each one bundles a state
// store and its simulated flows under a context that dies with the
// session.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/yusrlabs/yusr/internal/app"
	"github.com/yusrlabs/yusr/internal/sim"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one connected watch: its state store, the background lap
// tracker, and the call and messenger flows.
type Session struct {
	ID        string
	Store     *app.Store
	Call      *sim.Call
	Messenger *sim.Messenger
	Timing    sim.Timing

	ctx    context.Context
	cancel context.CancelFunc
}

// Context is cancelled when the session closes; simulated flows hang off
// it.
func (s *Session) Context() context.Context {
	return s.ctx
}

func (s *Session) close() {
	s.cancel()
}

// Registry tracks live sessions by ID.
type Registry struct {
	timing sim.Timing

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(timing sim.Timing) *Registry {
	return &Registry{
		timing:   timing,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with a fresh store and running lap tracker.
func (r *Registry) Create(ctx context.Context) *Session {
	store := app.NewStore()
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s := &Session{
		ID:        uuid.NewString(),
		Store:     store,
		Call:      sim.NewCall(store, r.timing),
		Messenger: sim.NewMessenger(store, r.timing),
		Timing:    r.timing,
		ctx:       ctx,
		cancel:    cancel,
	}
	go sim.RunAutoLap(ctx, store, r.timing.LapInterval)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get looks up a live session.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete closes and removes a session.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.close()
	return nil
}

// Close tears down every live session.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		s.close()
		delete(r.sessions, id)
	}
}
