package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"automation_snooze/internal/models"
	"automation_snooze/internal/registry"
	"automation_snooze/internal/service"
)

func TestAutomationsHandler_List(t *testing.T) {
	auto := &mockAutomations{groups: []registry.Group{
		{Name: "Porch", Items: []models.AutomationItem{{ID: "a1", Name: "Porch Light"}}},
		{Name: "Unassigned", Items: []models.AutomationItem{{ID: "a4", Name: "Backup Job"}}},
	}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Automations: auto}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodGet, "/api/v1/automations?q=light&group_by=area&locale=de", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if auto.lastParams.Query != "light" || auto.lastParams.GroupBy != "area" || auto.lastParams.Locale != "de" {
		t.Fatalf("service got %+v", auto.lastParams)
	}
	var out struct {
		Groups []registry.Group `json:"groups"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if len(out.Groups) != 2 || out.Groups[0].Name != "Porch" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestAutomationsHandler_List_UnknownGroupKeyTo400(t *testing.T) {
	auto := &mockAutomations{err: service.ErrUnknownGroupKey}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Automations: auto}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodGet, "/api/v1/automations?group_by=room", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
	}
}

func TestAutomationsHandler_List_PlatformErrorTo502(t *testing.T) {
	auto := &mockAutomations{err: errors.New("platform unreachable")}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Automations: auto}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodGet, "/api/v1/automations", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d (body=%s)", w.Code, w.Body.String())
	}
}

func TestAutomationsHandler_Counts(t *testing.T) {
	auto := &mockAutomations{counts: service.GroupCounts{Areas: 3, Labels: 5, Categories: 2}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Automations: auto}
	r := newTestRouter(s)

	w := doAuthedJSON(r, http.MethodGet, "/api/v1/automations/counts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var counts service.GroupCounts
	_ = json.Unmarshal(w.Body.Bytes(), &counts)
	if counts.Areas != 3 || counts.Labels != 5 || counts.Categories != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}
