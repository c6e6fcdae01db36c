package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"automation_snooze/internal/models"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// Each unit is matched independently so "1d2h30m" accumulates in any order.
// The minute pattern must not treat the "m" of a longer token like "mi..." as
// a minute unit; Go regexp has no lookahead, so it consumes an optional
// non-'i' rune after the unit instead.
var (
	dayPattern    = regexp.MustCompile(`(-?\d+(?:\.\d+)?)d`)
	hourPattern   = regexp.MustCompile(`(-?\d+(?:\.\d+)?)h`)
	minutePattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)m(?:[^i]|$)`)
)

// ParseDurationInput parses free text like "2h30m", "1.5h", "1d2h" or a bare
// minute count like "90" into a ParsedDuration. Whitespace and case are
// ignored. Returns nil for anything unparseable or non-positive.
func ParseDurationInput(input string) *models.ParsedDuration {
	s := strings.Join(strings.Fields(strings.ToLower(input)), "")
	if s == "" {
		return nil
	}

	var total float64
	matched := false
	for _, unit := range []struct {
		pattern *regexp.Regexp
		scale   float64
	}{
		{dayPattern, minutesPerDay},
		{hourPattern, minutesPerHour},
		{minutePattern, 1},
	} {
		m := unit.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || v < 0 {
			return nil
		}
		total += v * unit.scale
		matched = true
	}

	// No unit suffix anywhere: interpret the whole string as bare minutes.
	if !matched {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil
		}
		total = v
	}

	rounded := int(math.Round(total))
	if rounded <= 0 {
		return nil
	}
	d := MinutesToDuration(rounded)
	return &d
}

// IsDurationValid reports whether input parses to a positive duration.
func IsDurationValid(input string) bool {
	return ParseDurationInput(input) != nil
}

// DurationToMinutes collapses a ParsedDuration to its total-minutes scalar.
func DurationToMinutes(d models.ParsedDuration) int {
	return d.Days*minutesPerDay + d.Hours*minutesPerHour + d.Minutes
}

// MinutesToDuration splits a minute count into the canonical days/hours/minutes
// form (0 <= hours < 24, 0 <= minutes < 60).
func MinutesToDuration(total int) models.ParsedDuration {
	return models.ParsedDuration{
		Days:    total / minutesPerDay,
		Hours:   total % minutesPerDay / minutesPerHour,
		Minutes: total % minutesPerHour,
	}
}

// FormatDuration renders non-zero components in long form: "1 day, 2 hours".
// All components zero renders "".
func FormatDuration(days, hours, minutes int) string {
	var parts []string
	if days > 0 {
		parts = append(parts, pluralize(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, pluralize(minutes, "minute"))
	}
	return strings.Join(parts, ", ")
}

// FormatDurationShort renders non-zero components as "1d 2h 30m". All
// components zero renders ""; callers substitute their own fallback label.
func FormatDurationShort(days, hours, minutes int) string {
	var parts []string
	if days > 0 {
		parts = append(parts, strconv.Itoa(days)+"d")
	}
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours)+"h")
	}
	if minutes > 0 {
		parts = append(parts, strconv.Itoa(minutes)+"m")
	}
	return strings.Join(parts, " ")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
