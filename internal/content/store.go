package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned for lookups of unknown content IDs.
var ErrNotFound = errors.New("not found")

// fallbackDay backs the checklist for days without a seeded task list.
const fallbackDay = 8

// Store reads reference content from the seeded SQLite database.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DayName returns the Arabic day label for a hajj day, or a "Day N"
// placeholder for unknown days.
func (s *Store) DayName(ctx context.Context, day int) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name_ar FROM day_names WHERE day = ?`, day,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Sprintf("Day %d", day), nil
	}
	return name, err
}

// TasksForDay returns the checklist for day, falling back to the day-8
// list when the day has no seeded checklist.
func (s *Store) TasksForDay(ctx context.Context, day int) ([]Task, error) {
	tasks, err := s.tasksFor(ctx, day)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 && day != fallbackDay {
		return s.tasksFor(ctx, fallbackDay)
	}
	return tasks, nil
}

func (s *Store) tasksFor(ctx context.Context, day int) ([]Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, day, title_ar, title_en, time
		FROM day_tasks WHERE day = ? ORDER BY position
	`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Day, &t.TitleAr, &t.TitleEn, &t.Time); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Library returns the items of one library section in display order.
func (s *Store) Library(ctx context.Context, section string) ([]LibraryItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, section, title_ar, title_en, content_ar, content_en
		FROM library_items WHERE section = ? ORDER BY position
	`, section)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LibraryItem
	for rows.Next() {
		var it LibraryItem
		if err := rows.Scan(&it.ID, &it.Section, &it.TitleAr, &it.TitleEn, &it.ContentAr, &it.ContentEn); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Services lists the nearby-service categories.
func (s *Store) Services(ctx context.Context) ([]Service, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name_ar, name_en, distance, nearby
		FROM services ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Service
	for rows.Next() {
		var sv Service
		if err := rows.Scan(&sv.ID, &sv.NameAr, &sv.NameEn, &sv.Distance, &sv.Nearby); err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

// Sheikhs lists consultation contacts in display order.
func (s *Store) Sheikhs(ctx context.Context) ([]Sheikh, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name_ar, name_en, languages_ar, languages_en, available
		FROM sheikhs ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sheikh
	for rows.Next() {
		var sh Sheikh
		if err := rows.Scan(&sh.ID, &sh.NameAr, &sh.NameEn, &sh.LanguagesAr, &sh.LanguagesEn, &sh.Available); err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

// SheikhByID returns one contact, ErrNotFound for unknown IDs.
func (s *Store) SheikhByID(ctx context.Context, id string) (Sheikh, error) {
	var sh Sheikh
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name_ar, name_en, languages_ar, languages_en, available
		FROM sheikhs WHERE id = ?
	`, id).Scan(&sh.ID, &sh.NameAr, &sh.NameEn, &sh.LanguagesAr, &sh.LanguagesEn, &sh.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return Sheikh{}, ErrNotFound
	}
	return sh, err
}

// GroupMembers lists the campaign group with presence status.
func (s *Store) GroupMembers(ctx context.Context) ([]GroupMember, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name_ar, name_en, status
		FROM group_members ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GroupMember
	for rows.Next() {
		var m GroupMember
		if err := rows.Scan(&m.ID, &m.NameAr, &m.NameEn, &m.Status); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Destinations lists the navigable landmarks.
func (s *Store) Destinations(ctx context.Context) ([]Destination, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name_ar, name_en, distance, time
		FROM destinations ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Destination
	for rows.Next() {
		var d Destination
		if err := rows.Scan(&d.ID, &d.NameAr, &d.NameEn, &d.Distance, &d.Time); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DestinationByID returns one landmark, ErrNotFound for unknown IDs.
func (s *Store) DestinationByID(ctx context.Context, id string) (Destination, error) {
	var d Destination
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name_ar, name_en, distance, time
		FROM destinations WHERE id = ?
	`, id).Scan(&d.ID, &d.NameAr, &d.NameEn, &d.Distance, &d.Time)
	if errors.Is(err, sql.ErrNoRows) {
		return Destination{}, ErrNotFound
	}
	return d, err
}

// RouteSteps returns the mock turn-by-turn instructions.
func (s *Store) RouteSteps(ctx context.Context) ([]RouteStep, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT direction, text_ar, text_en
		FROM route_steps ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RouteStep
	for rows.Next() {
		var st RouteStep
		if err := rows.Scan(&st.Direction, &st.TextAr, &st.TextEn); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Alerts lists broadcast notifications, newest first by seed order.
func (s *Store) Alerts(ctx context.Context) ([]Alert, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, title_ar, title_en, message_ar, message_en, time
		FROM alerts ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Alert
	for rows.Next() {
		var a Alert
		if err := rows.Scan(&a.ID, &a.Type, &a.TitleAr, &a.TitleEn, &a.MessageAr, &a.MessageEn, &a.Time); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SupportOptions lists the support contact channels.
func (s *Store) SupportOptions(ctx context.Context) ([]SupportOption, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name_ar, name_en, desc_ar, desc_en
		FROM support_options ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SupportOption
	for rows.Next() {
		var o SupportOption
		if err := rows.Scan(&o.ID, &o.NameAr, &o.NameEn, &o.DescAr, &o.DescEn); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// FAQs lists the support screen question/answer pairs.
func (s *Store) FAQs(ctx context.Context) ([]FAQ, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question_ar, question_en, answer_ar, answer_en
		FROM faq_items ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FAQ
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.QuestionAr, &f.QuestionEn, &f.AnswerAr, &f.AnswerEn); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
