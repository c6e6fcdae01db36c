package models

import "time"

// ParsedDuration is an elapsed-time span split into whole days/hours/minutes.
// It is always derived fresh from input and never mutated in place.
type ParsedDuration struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// DurationPreference is the persisted "last used duration" blob.
type DurationPreference struct {
	Minutes   int            `json:"minutes"`
	Duration  ParsedDuration `json:"duration"`
	Timestamp int64          `json:"timestamp"` // epoch milliseconds
}

// DateOption is one selectable calendar day for a date picker.
type DateOption struct {
	Value string `json:"value"` // YYYY-MM-DD
	Label string `json:"label"` // locale-formatted
}

// SavedAt returns the preference write time.
func (p DurationPreference) SavedAt() time.Time {
	return time.UnixMilli(p.Timestamp).UTC()
}
