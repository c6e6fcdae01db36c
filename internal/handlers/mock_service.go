package handlers

import (
	"context"
	"net/http"
	"time"

	"automation_snooze/internal/models"
	"automation_snooze/internal/registry"
	"automation_snooze/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockSnooze struct {
	pauseResp   []models.Snooze
	pauseErr    error
	adjustResp  *models.Snooze
	adjustErr   error
	cancelErr   error
	groupResp   models.ParsedDuration
	groupErr    error
	lastParams  service.PauseParams
	lastEntity  string
	lastAreaID  string
	lastLabelID string
	cancelAlls  int
}

func (m *mockSnooze) Pause(ctx context.Context, p service.PauseParams) ([]models.Snooze, error) {
	m.lastParams = p
	return m.pauseResp, m.pauseErr
}
func (m *mockSnooze) PauseByArea(ctx context.Context, areaID, durationInput string) (models.ParsedDuration, error) {
	m.lastAreaID = areaID
	return m.groupResp, m.groupErr
}
func (m *mockSnooze) PauseByLabel(ctx context.Context, labelID, durationInput string) (models.ParsedDuration, error) {
	m.lastLabelID = labelID
	return m.groupResp, m.groupErr
}
func (m *mockSnooze) Adjust(ctx context.Context, entityID, durationInput string) (*models.Snooze, error) {
	m.lastEntity = entityID
	return m.adjustResp, m.adjustErr
}
func (m *mockSnooze) Cancel(ctx context.Context, entityID string) error {
	m.lastEntity = entityID
	return m.cancelErr
}
func (m *mockSnooze) CancelAll(ctx context.Context) error {
	m.cancelAlls++
	return m.cancelErr
}
func (m *mockSnooze) CancelScheduled(ctx context.Context, entityID string) error {
	m.lastEntity = entityID
	return m.cancelErr
}

type mockAutomations struct {
	groups     []registry.Group
	counts     service.GroupCounts
	err        error
	lastParams service.ListParams
}

func (m *mockAutomations) List(ctx context.Context, p service.ListParams) ([]registry.Group, error) {
	m.lastParams = p
	return m.groups, m.err
}
func (m *mockAutomations) Counts(ctx context.Context) (service.GroupCounts, error) {
	return m.counts, m.err
}

type mockMonitoring struct {
	statuses   []models.SnoozeStatus
	err        error
	lastLocale string
}

func (m *mockMonitoring) ActiveSnoozes(ctx context.Context, locale string) ([]models.SnoozeStatus, error) {
	m.lastLocale = locale
	return m.statuses, m.err
}

type mockPreferences struct {
	pref        *models.DurationPreference
	saved       models.DurationPreference
	loadErr     error
	saveErr     error
	lastUserID  int
	lastMinutes int
	saveCalls   int
}

func (m *mockPreferences) LastUsed(ctx context.Context, userID int) (*models.DurationPreference, error) {
	m.lastUserID = userID
	return m.pref, m.loadErr
}
func (m *mockPreferences) SaveLastUsed(ctx context.Context, userID, minutes int) (models.DurationPreference, error) {
	m.saveCalls++
	m.lastUserID = userID
	m.lastMinutes = minutes
	return m.saved, m.saveErr
}

type mockEventLog struct {
	resp     []models.SnoozeEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.SnoozeEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
