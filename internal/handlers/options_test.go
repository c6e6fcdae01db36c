package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"automation_snooze/internal/models"
	"automation_snooze/internal/service"
)

func TestOptionsHandler_DateOptions(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseID: 7}}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodGet, "/api/v1/options/dates?count=7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Dates []models.DateOption `json:"dates"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if len(out.Dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(out.Dates))
	}
	for _, d := range out.Dates {
		if d.Value == "" || d.Label == "" {
			t.Fatalf("incomplete option: %+v", d)
		}
	}

	// Out-of-range count falls back to the default.
	w = doAuthedJSON(r, http.MethodGet, "/api/v1/options/dates?count=9999", "")
	out.Dates = nil
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if len(out.Dates) != defaultDateOptionCount {
		t.Fatalf("expected default %d dates, got %d", defaultDateOptionCount, len(out.Dates))
	}
}

func TestOptionsHandler_PreviewDuration(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseID: 7}}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodGet, "/api/v1/options/duration?input=2h30m", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Valid    bool                  `json:"valid"`
		Duration models.ParsedDuration `json:"duration"`
		Minutes  int                   `json:"minutes"`
		Long     string                `json:"long"`
		Short    string                `json:"short"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if !out.Valid || out.Minutes != 150 {
		t.Fatalf("unexpected preview: %+v", out)
	}
	if out.Long != "2 hours, 30 minutes" || out.Short != "2h 30m" {
		t.Fatalf("unexpected previews: long=%q short=%q", out.Long, out.Short)
	}

	// Invalid input previews as not valid rather than erroring.
	w = doAuthedJSON(r, http.MethodGet, "/api/v1/options/duration?input=dhm", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var invalid struct {
		Valid bool `json:"valid"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &invalid)
	if invalid.Valid {
		t.Fatalf("expected valid=false for %q", "dhm")
	}
}

func TestPreferencesHandler_GetAndPut(t *testing.T) {
	prefs := &mockPreferences{
		pref:  &models.DurationPreference{Minutes: 90, Duration: models.ParsedDuration{Hours: 1, Minutes: 30}},
		saved: models.DurationPreference{Minutes: 45, Duration: models.ParsedDuration{Minutes: 45}},
	}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Preferences: prefs}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodGet, "/api/v1/preferences/duration", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	if prefs.lastUserID != 7 {
		t.Fatalf("expected user 7, got %d", prefs.lastUserID)
	}
	var out struct {
		Preference *models.DurationPreference `json:"preference"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Preference == nil || out.Preference.Minutes != 90 {
		t.Fatalf("unexpected preference: %+v", out.Preference)
	}

	w = doAuthedJSON(r, http.MethodPut, "/api/v1/preferences/duration", `{"minutes":45}`)
	if w.Code != http.StatusOK {
		t.Fatalf("put status=%d, body=%s", w.Code, w.Body.String())
	}
	if prefs.lastMinutes != 45 {
		t.Fatalf("expected saved minutes 45, got %d", prefs.lastMinutes)
	}
}

func TestPreferencesHandler_PutInvalidMinutes(t *testing.T) {
	prefs := &mockPreferences{saveErr: service.ErrInvalidMinutes}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Preferences: prefs}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodPut, "/api/v1/preferences/duration", `{"minutes":-5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
	}
}
