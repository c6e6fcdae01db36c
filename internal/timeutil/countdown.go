package timeutil

import (
	"fmt"
	"time"
)

// DefaultPastLabel is shown when the resume instant has already passed.
const DefaultPastLabel = "Resuming..."

// FormatCountdown describes the time remaining until resumeAt as seen from
// now, most-significant-first, at most two steps of detail:
//
//	days remaining:  "1d 2h 5m"  (no seconds)
//	hours remaining: "2h 5m 30s"
//	else:            "5m 30s"
//
// A resumeAt at or before now returns pastLabel ("" selects DefaultPastLabel).
// Pure given now, so safe to re-evaluate at any refresh frequency.
func FormatCountdown(resumeAt, now time.Time, pastLabel string) string {
	if pastLabel == "" {
		pastLabel = DefaultPastLabel
	}
	remaining := resumeAt.Sub(now)
	if remaining <= 0 {
		return pastLabel
	}

	days := int(remaining / (24 * time.Hour))
	hours := int(remaining % (24 * time.Hour) / time.Hour)
	minutes := int(remaining % time.Hour / time.Minute)
	seconds := int(remaining % time.Minute / time.Second)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	default:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
}

// FormatDateTime renders t as "{weekday}, {month} {day}, {HH:MM}" in the
// requested locale, inserting the year when it differs from now's year.
func FormatDateTime(t time.Time, locale string, now time.Time) string {
	n := localeFor(locale)
	if t.Year() != now.Year() {
		return fmt.Sprintf("%s, %s %d, %d, %02d:%02d",
			n.weekday(t.Weekday()), n.month(t.Month()), t.Day(), t.Year(), t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%s, %s %d, %02d:%02d",
		n.weekday(t.Weekday()), n.month(t.Month()), t.Day(), t.Hour(), t.Minute())
}
