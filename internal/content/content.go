// Package content serves the fixed reference data the watch screens show:
// per-day task checklists, the supplication library, nearby services,
// sheikhs, group presence, navigation destinations, route steps, alerts,
// and support options. The data lives in an in-memory SQLite database
// seeded at startup; it is read-only input to screens, pure data with no
// behavior.
package content

// Task is one checklist entry for a hajj day.
type Task struct {
	ID      string `json:"id"`
	Day     int    `json:"day"`
	TitleAr string `json:"titleAr"`
	TitleEn string `json:"titleEn"`
	Time    string `json:"time,omitempty"`
}

// Library sections.
const (
	SectionAdhkar = "adhkar"
	SectionDuaa   = "duaa"
)

// LibraryItem is one expandable supplication entry.
type LibraryItem struct {
	ID        string `json:"id"`
	Section   string `json:"section"`
	TitleAr   string `json:"titleAr"`
	TitleEn   string `json:"titleEn"`
	ContentAr string `json:"contentAr"`
	ContentEn string `json:"contentEn"`
}

// Service is a nearby-service category with mock distance and count.
type Service struct {
	ID       string `json:"id"`
	NameAr   string `json:"nameAr"`
	NameEn   string `json:"nameEn"`
	Distance string `json:"distance"`
	Nearby   int    `json:"nearby"`
}

// Sheikh is a consultation contact.
type Sheikh struct {
	ID          string `json:"id"`
	NameAr      string `json:"nameAr"`
	NameEn      string `json:"nameEn"`
	LanguagesAr string `json:"languagesAr"`
	LanguagesEn string `json:"languagesEn"`
	Available   bool   `json:"available"`
}

// Group member presence states.
const (
	StatusPresent   = "present"
	StatusSeparated = "separated"
)

// GroupMember is one pilgrim in the organizer's campaign group.
type GroupMember struct {
	ID     string `json:"id"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	Status string `json:"status"`
}

// Destination is a navigable landmark with mock distance and travel time.
type Destination struct {
	ID       string `json:"id"`
	NameAr   string `json:"nameAr"`
	NameEn   string `json:"nameEn"`
	Distance string `json:"distance"`
	Time     string `json:"time"`
}

// RouteStep is one turn instruction on the mock guidance route.
type RouteStep struct {
	Direction string `json:"direction"` // straight, left, right
	TextAr    string `json:"textAr"`
	TextEn    string `json:"textEn"`
}

// Alert types.
const (
	AlertMinistry = "ministry"
	AlertSafety   = "safety"
	AlertInfo     = "info"
)

// Alert is a broadcast notification shown on the alerts screen.
type Alert struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	TitleAr   string `json:"titleAr"`
	TitleEn   string `json:"titleEn"`
	MessageAr string `json:"messageAr"`
	MessageEn string `json:"messageEn"`
	Time      string `json:"time"`
}

// SupportOption is one contact channel on the support screen.
type SupportOption struct {
	ID     string `json:"id"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	DescAr string `json:"descAr"`
	DescEn string `json:"descEn"`
}

// FAQ is one question/answer pair on the support screen.
type FAQ struct {
	QuestionAr string `json:"questionAr"`
	QuestionEn string `json:"questionEn"`
	AnswerAr   string `json:"answerAr"`
	AnswerEn   string `json:"answerEn"`
}
