// Package app holds the per-session application state store: session,
// navigation, and domain state behind a fixed set of mutators, plus an
// event stream for subscribers. Screens never touch fields directly; they
// read snapshots and call the named operations.
package app

import "github.com/yusrlabs/yusr/internal/i18n"

// UserMode selects the watch profile chosen during onboarding.
type UserMode string

const (
	ModePilgrim   UserMode = "pilgrim"
	ModeOrganizer UserMode = "organizer"
)

// DefaultScreen is rendered when the current screen ID resolves to nothing.
const DefaultScreen = "welcome"

// TawafLaps is the lap count that completes a tawaf.
const TawafLaps = 7

// Global font size bounds in pixels.
const (
	MinFontSize     = 12
	MaxFontSize     = 24
	DefaultFontSize = 14
)

// PilgrimData is the mock pilgrim record populated when a user mode is
// chosen. Wallet amounts are whole SAR; ExchangeRate is original-currency
// units per 1 SAR.
type PilgrimData struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NameAr           string   `json:"nameAr"`
	Nationality      string   `json:"nationality"`
	PassportNumber   string   `json:"passportNumber"`
	CampaignID       string   `json:"campaignId"`
	CampaignName     string   `json:"campaignName"`
	BloodType        string   `json:"bloodType"`
	ChronicDiseases  []string `json:"chronicDiseases"`
	Allergies        []string `json:"allergies"`
	EmergencyContact string   `json:"emergencyContact"`
	EmergencyPhone   string   `json:"emergencyPhone"`
	WalletBalance    int64    `json:"walletBalance"`
	OriginalCurrency string   `json:"originalCurrency"`
	OriginalBalance  int64    `json:"originalBalance"`
	ExchangeRate     float64  `json:"exchangeRate"`
}

// Destination is the navigation target selected on the navigation screen.
type Destination struct {
	ID     string `json:"id"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`

	// Display strings, mock data ("1.2 km", "15 min").
	Distance string `json:"distance"`
	Time     string `json:"time"`
}

// State is the full session state record. Lifecycle is the session
// lifetime; nothing persists past it.
type State struct {
	Onboarded           bool
	UserMode            UserMode // empty until chosen
	Language            i18n.Language
	DarkMode            bool
	CurrentScreen       string
	PilgrimData         *PilgrimData // nil until a user mode is chosen
	HajjDay             int          // 8..13
	TawafCount          int          // 0..TawafLaps, clamped
	TawafActive         bool
	CompletedTasks      map[string]struct{}
	PIN                 string
	GlobalFontSize      int
	SelectedDestination *Destination
}

func defaultState() State {
	return State{
		Language:       i18n.Arabic,
		CurrentScreen:  DefaultScreen,
		HajjDay:        8,
		CompletedTasks: make(map[string]struct{}),
		PIN:            "1234",
		GlobalFontSize: DefaultFontSize,
	}
}

// TaskDone reports membership of id in the completed-task set.
func (s State) TaskDone(id string) bool {
	_, ok := s.CompletedTasks[id]
	return ok
}

// clone deep-copies the state so snapshot holders can never alias live
// store data.
func (s State) clone() State {
	out := s
	out.CompletedTasks = make(map[string]struct{}, len(s.CompletedTasks))
	for id := range s.CompletedTasks {
		out.CompletedTasks[id] = struct{}{}
	}
	if s.PilgrimData != nil {
		p := *s.PilgrimData
		p.ChronicDiseases = append([]string(nil), s.PilgrimData.ChronicDiseases...)
		p.Allergies = append([]string(nil), s.PilgrimData.Allergies...)
		out.PilgrimData = &p
	}
	if s.SelectedDestination != nil {
		d := *s.SelectedDestination
		out.SelectedDestination = &d
	}
	return out
}
