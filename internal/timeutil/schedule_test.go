package timeutil

import (
	"testing"
	"time"
)

func TestCombineDateTime_EmptyInputs(t *testing.T) {
	if got := CombineDateTime("", "10:00", time.UTC); got != "" {
		t.Fatalf("missing date: got %q", got)
	}
	if got := CombineDateTime("2025-01-01", "", time.UTC); got != "" {
		t.Fatalf("missing time: got %q", got)
	}
}

func TestCombineDateTime_Malformed(t *testing.T) {
	if got := CombineDateTime("2025-13-40", "10:00", time.UTC); got != "" {
		t.Fatalf("bad date: got %q", got)
	}
	if got := CombineDateTime("2025-01-01", "25:99", time.UTC); got != "" {
		t.Fatalf("bad time: got %q", got)
	}
}

func TestCombineDateTime_OffsetSign(t *testing.T) {
	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{"behind UTC", time.FixedZone("UTC-5", -5*3600), "2025-01-02T10:30:00-05:00"},
		{"ahead of UTC", time.FixedZone("UTC+2", 2*3600), "2025-01-02T10:30:00+02:00"},
		{"at UTC", time.UTC, "2025-01-02T10:30:00+00:00"},
		{"half-hour zone", time.FixedZone("UTC+5:30", 5*3600+1800), "2025-01-02T10:30:00+05:30"},
		{"negative half-hour", time.FixedZone("UTC-9:30", -9*3600-1800), "2025-01-02T10:30:00-09:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombineDateTime("2025-01-02", "10:30", tt.loc); got != tt.want {
				t.Fatalf("CombineDateTime = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCombineDateTime_RoundTripsAsRFC3339(t *testing.T) {
	iso := CombineDateTime("2025-06-15", "23:45", time.FixedZone("UTC-5", -5*3600))
	parsed, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		t.Fatalf("parse %q: %v", iso, err)
	}
	if !parsed.Equal(time.Date(2025, 6, 16, 4, 45, 0, 0, time.UTC)) {
		t.Fatalf("instant mismatch: %v", parsed)
	}
}

func TestCurrentDateTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 5, 9, 0, time.UTC)
	date, clock := CurrentDateTime(now)
	if date != "2026-09-01" || clock != "08:05" {
		t.Fatalf("CurrentDateTime = %q %q", date, clock)
	}
}

func TestGenerateDateOptions_CountAndMonotonicity(t *testing.T) {
	now := time.Date(2026, 9, 1, 13, 45, 0, 0, time.UTC)
	opts := GenerateDateOptions(30, "en", now)
	if len(opts) != 30 {
		t.Fatalf("len = %d, want 30", len(opts))
	}
	seen := make(map[string]bool)
	for i, opt := range opts {
		want := now.AddDate(0, 0, i).Format("2006-01-02")
		if opt.Value != want {
			t.Fatalf("opts[%d].Value = %q, want %q", i, opt.Value, want)
		}
		if seen[opt.Value] {
			t.Fatalf("duplicate value %q", opt.Value)
		}
		seen[opt.Value] = true
	}
	if opts[0].Label != "Tuesday, September 1" {
		t.Fatalf("opts[0].Label = %q", opts[0].Label)
	}
}

func TestGenerateDateOptions_YearBoundary(t *testing.T) {
	now := time.Date(2026, 12, 30, 10, 0, 0, 0, time.UTC)
	opts := GenerateDateOptions(4, "", now)
	wantLabels := []string{
		"Wednesday, December 30",
		"Thursday, December 31",
		"Friday, January 1, 2027",
		"Saturday, January 2, 2027",
	}
	for i, want := range wantLabels {
		if opts[i].Label != want {
			t.Fatalf("opts[%d].Label = %q, want %q", i, opts[i].Label, want)
		}
	}
}
