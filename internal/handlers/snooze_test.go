package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"automation_snooze/internal/models"
	"automation_snooze/internal/service"
)

func doAuthedJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer valid")
	r.ServeHTTP(w, req)
	return w
}

func TestSnoozeHandler_Create_DurationMode(t *testing.T) {
	resumeAt := time.Now().Add(150 * time.Minute).UTC()
	sn := &mockSnooze{pauseResp: []models.Snooze{
		{ID: "w1", EntityID: "automation.porch_light", ResumeAt: resumeAt, DurationMinutes: 150},
	}}
	prefs := &mockPreferences{}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Snooze:        sn,
		Preferences:   prefs,
	}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodPost, "/api/v1/snooze",
		`{"entity_ids":["automation.porch_light"],"duration":"2h30m"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if sn.lastParams.DurationInput != "2h30m" || len(sn.lastParams.EntityIDs) != 1 {
		t.Fatalf("service got %+v", sn.lastParams)
	}

	var out struct {
		Status  string          `json:"status"`
		Snoozes []models.Snooze `json:"snoozes"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Status != statusSnoozed || len(out.Snoozes) != 1 {
		t.Fatalf("unexpected response: %+v", out)
	}

	// The used duration becomes the user's saved preference.
	if prefs.saveCalls != 1 || prefs.lastUserID != 7 || prefs.lastMinutes != 150 {
		t.Fatalf("preference not saved: %+v", prefs)
	}
}

func TestSnoozeHandler_Create_ScheduleModeSkipsPreference(t *testing.T) {
	sn := &mockSnooze{pauseResp: []models.Snooze{
		{ID: "w1", EntityID: "automation.vacuum", ResumeAt: time.Now().Add(time.Hour)},
	}}
	prefs := &mockPreferences{}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Snooze:        sn,
		Preferences:   prefs,
	}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodPost, "/api/v1/snooze",
		`{"entity_ids":["automation.vacuum"],"resume_at":"2026-09-02T08:00:00Z"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if prefs.saveCalls != 0 {
		t.Fatalf("schedule mode must not overwrite the duration preference")
	}
}

func TestSnoozeHandler_Create_ValidationTo400(t *testing.T) {
	sn := &mockSnooze{pauseErr: service.ErrInvalidDuration}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Snooze:        sn,
		Preferences:   &mockPreferences{},
	}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodPost, "/api/v1/snooze",
		`{"entity_ids":["a"],"duration":"dhm"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid duration, got %d (body=%s)", w.Code, w.Body.String())
	}

	// Missing entity_ids never reaches the service.
	w = doAuthedJSON(r, http.MethodPost, "/api/v1/snooze", `{"duration":"1h"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing entity_ids, got %d", w.Code)
	}
}

func TestSnoozeHandler_List(t *testing.T) {
	mon := &mockMonitoring{statuses: []models.SnoozeStatus{
		{Snooze: models.Snooze{EntityID: "automation.vacuum"}, Countdown: "5m 0s"},
	}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Monitoring: mon}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodGet, "/api/v1/snooze?locale=fr", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if mon.lastLocale != "fr" {
		t.Fatalf("locale not forwarded, got %q", mon.lastLocale)
	}
	var out struct {
		Count   int                   `json:"count"`
		Snoozes []models.SnoozeStatus `json:"snoozes"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 1 || out.Snoozes[0].Countdown != "5m 0s" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestSnoozeHandler_Adjust(t *testing.T) {
	adjusted := &models.Snooze{ID: "w1", EntityID: "automation.vacuum", DurationMinutes: 60}
	sn := &mockSnooze{adjustResp: adjusted}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Snooze: sn}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodPost, "/api/v1/snooze/adjust",
		`{"entity_id":"automation.vacuum","duration":"1h"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if sn.lastEntity != "automation.vacuum" {
		t.Fatalf("service got entity %q", sn.lastEntity)
	}
}

func TestSnoozeHandler_Adjust_NotSnoozedTo404(t *testing.T) {
	sn := &mockSnooze{adjustErr: service.ErrNotSnoozed}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Snooze: sn}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodPost, "/api/v1/snooze/adjust",
		`{"entity_id":"automation.unknown","duration":"1h"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (body=%s)", w.Code, w.Body.String())
	}
}

func TestSnoozeHandler_CancelRoutes(t *testing.T) {
	sn := &mockSnooze{}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Snooze: sn}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodDelete, "/api/v1/snooze/automation.vacuum", "")
	if w.Code != http.StatusOK {
		t.Fatalf("cancel status=%d, body=%s", w.Code, w.Body.String())
	}
	if sn.lastEntity != "automation.vacuum" {
		t.Fatalf("cancel got entity %q", sn.lastEntity)
	}

	w = doAuthedJSON(r, http.MethodPost, "/api/v1/snooze/cancel_all", "")
	if w.Code != http.StatusOK {
		t.Fatalf("cancel_all status=%d, body=%s", w.Code, w.Body.String())
	}
	if sn.cancelAlls != 1 {
		t.Fatalf("cancel_all calls = %d", sn.cancelAlls)
	}

	w = doAuthedJSON(r, http.MethodPost, "/api/v1/snooze/cancel_scheduled",
		`{"entity_id":"automation.vacuum"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel_scheduled status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestSnoozeHandler_CancelScheduled_NotScheduledTo404(t *testing.T) {
	sn := &mockSnooze{cancelErr: service.ErrNotScheduled}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Snooze: sn}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodPost, "/api/v1/snooze/cancel_scheduled",
		`{"entity_id":"automation.vacuum"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (body=%s)", w.Code, w.Body.String())
	}
}

func TestSnoozeHandler_AreaAndLabel(t *testing.T) {
	sn := &mockSnooze{groupResp: models.ParsedDuration{Hours: 1}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Snooze: sn}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodPost, "/api/v1/snooze/area",
		`{"area_id":"living_room","duration":"1h"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("area status=%d, body=%s", w.Code, w.Body.String())
	}
	if sn.lastAreaID != "living_room" {
		t.Fatalf("area got %q", sn.lastAreaID)
	}

	// Missing area_id → 400 without touching the service.
	w = doAuthedJSON(r, http.MethodPost, "/api/v1/snooze/area", `{"duration":"1h"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing area_id, got %d", w.Code)
	}

	w = doAuthedJSON(r, http.MethodPost, "/api/v1/snooze/label",
		`{"label_id":"holiday","duration":"1h"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("label status=%d, body=%s", w.Code, w.Body.String())
	}
	if sn.lastLabelID != "holiday" {
		t.Fatalf("label got %q", sn.lastLabelID)
	}
}
