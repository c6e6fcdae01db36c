package timeutil

import (
	"fmt"
	"time"

	"automation_snooze/internal/models"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// CombineDateTime merges separate date ("2025-01-02") and time ("10:30") picker
// fields into an ISO-8601 instant carrying an explicit numeric offset for loc,
// e.g. "2025-01-02T10:30:00-05:00". The explicit offset keeps the instant
// unambiguous no matter where the consuming backend parses it. Returns "" when
// either field is empty or malformed. A nil loc means the host's local zone.
func CombineDateTime(dateStr, timeStr string, loc *time.Location) string {
	if dateStr == "" || timeStr == "" {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(dateLayout+"T"+clockLayout, dateStr+"T"+timeStr, loc)
	if err != nil {
		return ""
	}

	// Offset expressed as minutes behind UTC (positive west of UTC), matching
	// the browser platform's offset query, so the sign rule carries over: '+'
	// when the zone is at or ahead of UTC.
	_, offsetSec := t.Zone()
	offsetMin := -offsetSec / 60
	sign := "+"
	if offsetMin > 0 {
		sign = "-"
	}
	abs := offsetMin
	if abs < 0 {
		abs = -abs
	}
	return fmt.Sprintf("%sT%s:00%s%02d:%02d", dateStr, timeStr, sign, abs/60, abs%60)
}

// CurrentDateTime returns now's date as "YYYY-MM-DD" and clock time as "HH:MM"
// for pre-filling scheduler inputs.
func CurrentDateTime(now time.Time) (date, clock string) {
	return now.Format(dateLayout), now.Format(clockLayout)
}

// GenerateDateOptions produces count consecutive calendar days starting at
// now's date (inclusive), labeled "{weekday}, {month} {day}" in the requested
// locale, with ", {year}" appended for days outside now's year.
func GenerateDateOptions(count int, locale string, now time.Time) []models.DateOption {
	n := localeFor(locale)
	opts := make([]models.DateOption, 0, count)
	for i := 0; i < count; i++ {
		day := time.Date(now.Year(), now.Month(), now.Day()+i, 0, 0, 0, 0, now.Location())
		label := fmt.Sprintf("%s, %s %d", n.weekday(day.Weekday()), n.month(day.Month()), day.Day())
		if day.Year() != now.Year() {
			label = fmt.Sprintf("%s, %d", label, day.Year())
		}
		opts = append(opts, models.DateOption{
			Value: day.Format(dateLayout),
			Label: label,
		})
	}
	return opts
}
