package app

import (
	"sync"

	"github.com/yusrlabs/yusr/internal/i18n"
)

// Event is published to subscribers after every state-changing operation
// (and by simulated flows that want a heartbeat on the same stream).
type Event struct {
	Op     string `json:"op"`
	Screen string `json:"screen"`
}

// mockPilgrim is the fixed record installed when a user mode is chosen.
var mockPilgrim = PilgrimData{
	ID:               "PK-2024-001234",
	Name:             "Ahmed Khan",
	NameAr:           "أحمد خان",
	Nationality:      "Pakistan",
	PassportNumber:   "AB1234567",
	CampaignID:       "CAMP-PK-045",
	CampaignName:     "Al-Noor Hajj Group",
	BloodType:        "O+",
	ChronicDiseases:  []string{"Diabetes Type 2"},
	Allergies:        []string{"Penicillin"},
	EmergencyContact: "Fatima Khan",
	EmergencyPhone:   "+92-300-1234567",
	WalletBalance:    2500,
	OriginalCurrency: "PKR",
	OriginalBalance:  185000,
	ExchangeRate:     74,
}

// Store is the single source of truth for one session. All mutations are
// synchronous and atomic under the store mutex; subscribers receive one
// event per completed mutation, strictly after the state change.
type Store struct {
	mu    sync.Mutex
	state State
	subs  map[chan Event]struct{}
}

func NewStore() *Store {
	return &Store{
		state: defaultState(),
		subs:  make(map[chan Event]struct{}),
	}
}

// Snapshot returns a deep copy of the current state. Renderers and derived
// functions work on snapshots only.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe returns a buffered channel receiving events for every
// mutation. Slow subscribers are dropped, not blocked on.
func (s *Store) Subscribe() chan Event {
	ch := make(chan Event, 16)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel previously returned by Subscribe.
func (s *Store) Unsubscribe(ch chan Event) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}

// Emit publishes an event that is not tied to a state mutation. Simulated
// flows use it to surface progress (call ticks, message status) on the
// session's event stream.
func (s *Store) Emit(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publish(op)
}

// publish fans out under the store lock, so an event always reflects the
// fully applied mutation that produced it.
func (s *Store) publish(op string) {
	ev := Event{Op: op, Screen: s.state.CurrentScreen}
	for ch := range s.subs {
		select {
		case ch <- ev:
		default:
			// Drop if subscriber is slow.
		}
	}
}

func (s *Store) SetOnboarded(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Onboarded = v
	s.publish("setOnboarded")
}

// SelectUserMode sets the mode and installs the mock pilgrim record if one
// is not already present. Re-selecting a mode never clobbers in-session
// wallet or task changes.
func (s *Store) SelectUserMode(mode UserMode) error {
	if mode != ModePilgrim && mode != ModeOrganizer {
		return ErrInvalidMode
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UserMode = mode
	if s.state.PilgrimData == nil {
		p := mockPilgrim
		p.ChronicDiseases = append([]string(nil), mockPilgrim.ChronicDiseases...)
		p.Allergies = append([]string(nil), mockPilgrim.Allergies...)
		s.state.PilgrimData = &p
	}
	s.publish("selectUserMode")
	return nil
}

// SetLanguage rejects codes outside the supported set and leaves state
// untouched on rejection.
func (s *Store) SetLanguage(code i18n.Language) error {
	if !i18n.Supported(code) {
		return ErrUnsupportedLanguage
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Language = code
	s.publish("setLanguage")
	return nil
}

func (s *Store) ToggleDarkMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DarkMode = !s.state.DarkMode
	s.publish("toggleDarkMode")
}

// NavigateTo sets the current screen unconditionally. Unknown IDs are not
// an error here; resolution falls back to the default screen at render
// time.
func (s *Store) NavigateTo(screenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentScreen = screenID
	s.publish("navigate")
}

// SetPilgrimData replaces the pilgrim record wholesale.
func (s *Store) SetPilgrimData(p PilgrimData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PilgrimData = &p
	s.publish("setPilgrimData")
}

// IncrementTawaf adds one lap, clamped at TawafLaps. Reaching the final
// lap forces auto tracking off; further increments are no-ops.
func (s *Store) IncrementTawaf() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.TawafCount >= TawafLaps {
		return
	}
	s.state.TawafCount++
	if s.state.TawafCount == TawafLaps {
		s.state.TawafActive = false
	}
	s.publish("incrementTawaf")
}

func (s *Store) ResetTawaf() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TawafCount = 0
	s.state.TawafActive = false
	s.publish("resetTawaf")
}

// ToggleTawafActive flips auto tracking. A completed counter stays
// inactive until reset.
func (s *Store) ToggleTawafActive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.TawafCount >= TawafLaps {
		return
	}
	s.state.TawafActive = !s.state.TawafActive
	s.publish("toggleTawafActive")
}

// ToggleTask flips membership of taskID in the completed set.
func (s *Store) ToggleTask(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.CompletedTasks[taskID]; ok {
		delete(s.state.CompletedTasks, taskID)
	} else {
		s.state.CompletedTasks[taskID] = struct{}{}
	}
	s.publish("toggleTask")
}

// SetPin replaces the wallet PIN. Exactly 4 ASCII digits.
func (s *Store) SetPin(pin string) error {
	if !validPin(pin) {
		return ErrInvalidPin
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PIN = pin
	s.publish("setPin")
	return nil
}

// VerifyPin compares entry against the stored PIN. The mismatch is an
// explicit, testable result rather than a silent non-transition.
func (s *Store) VerifyPin(entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry != s.state.PIN {
		return ErrIncorrectPin
	}
	return nil
}

// AdjustWalletBalance applies a signed delta to the wallet balance. With
// no pilgrim record it is a silent no-op. The balance has no floor and may
// go negative.
func (s *Store) AdjustWalletBalance(delta int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.PilgrimData == nil {
		return
	}
	s.state.PilgrimData.WalletBalance += delta
	s.publish("adjustWalletBalance")
}

// SetGlobalFontSize stores the watch-wide font size, bounds-checked here
// rather than in each screen.
func (s *Store) SetGlobalFontSize(px int) error {
	if px < MinFontSize || px > MaxFontSize {
		return ErrFontSizeRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.GlobalFontSize = px
	s.publish("setGlobalFontSize")
	return nil
}

// SetSelectedDestination replaces the navigation target; nil clears it.
func (s *Store) SetSelectedDestination(d *Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d != nil {
		c := *d
		s.state.SelectedDestination = &c
	} else {
		s.state.SelectedDestination = nil
	}
	s.publish("setSelectedDestination")
}

// Translate resolves key for the session's current language.
func (s *Store) Translate(key string) string {
	s.mu.Lock()
	lang := s.state.Language
	s.mu.Unlock()
	return i18n.Translate(lang, key)
}

func validPin(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
