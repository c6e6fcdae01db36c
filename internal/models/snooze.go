package models

import "time"

// Snooze mirrors one paused automation window. The platform performs the actual
// enable/disable transition; this row only tracks it for display and bookkeeping.
type Snooze struct {
	ID              string     `json:"id"`
	EntityID        string     `json:"entity_id"`
	DisableAt       *time.Time `json:"disable_at,omitempty"` // nil = disabled immediately
	ResumeAt        time.Time  `json:"resume_at"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Scheduled reports whether the window has a disable time still in the future at t.
func (s Snooze) Scheduled(t time.Time) bool {
	return s.DisableAt != nil && s.DisableAt.After(t)
}

// SnoozeStatus is a Snooze decorated with display strings for clients.
type SnoozeStatus struct {
	Snooze
	Countdown   string `json:"countdown"`
	ResumeLabel string `json:"resume_label"`
}

// SnoozeEvent is a single log entry.
type SnoozeEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"` // PAUSE | RESUME | CANCEL | ADJUST | ERROR
	EntityID    string    `json:"entity_id,omitempty"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}
