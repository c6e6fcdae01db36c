package service

import (
	"context"
	"time"

	"automation_snooze/internal/models"
	"automation_snooze/internal/platform"
	"automation_snooze/internal/registry"
	"automation_snooze/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Snooze exposes the pause/cancel/adjust operations against the platform plus
// the local window mirror.
type Snooze interface {
	Pause(ctx context.Context, p PauseParams) ([]models.Snooze, error)
	PauseByArea(ctx context.Context, areaID, durationInput string) (models.ParsedDuration, error)
	PauseByLabel(ctx context.Context, labelID, durationInput string) (models.ParsedDuration, error)
	Adjust(ctx context.Context, entityID, durationInput string) (*models.Snooze, error)
	Cancel(ctx context.Context, entityID string) error
	CancelAll(ctx context.Context) error
	CancelScheduled(ctx context.Context, entityID string) error
}

// Automations exposes the filtered/grouped automation list over a cached
// platform snapshot.
type Automations interface {
	List(ctx context.Context, p ListParams) ([]registry.Group, error)
	Counts(ctx context.Context) (GroupCounts, error)
}

// Monitoring exposes active snooze windows decorated for display.
type Monitoring interface {
	ActiveSnoozes(ctx context.Context, locale string) ([]models.SnoozeStatus, error)
}

// Preferences stores the per-user "last used duration".
type Preferences interface {
	LastUsed(ctx context.Context, userID int) (*models.DurationPreference, error)
	SaveLastUsed(ctx context.Context, userID, minutes int) (models.DurationPreference, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.SnoozeEvent, error)
}

// Expiry runs the background loop that prunes elapsed snooze windows.
// Stop via context cancellation in main() for graceful shutdown.
type Expiry interface {
	Run(ctx context.Context, tick time.Duration)
}

// PauseParams carries one snooze submission. ResumeAt set selects schedule
// mode; otherwise DurationInput is parsed as free text.
type PauseParams struct {
	EntityIDs     []string
	DurationInput string
	ResumeAt      string // ISO-8601, schedule mode
	DisableAt     string // ISO-8601, optional; empty means disable immediately
}

// ListParams filters and groups the automation list.
type ListParams struct {
	Query   string
	GroupBy string // "area" | "label" | "category" | "" (flat)
	Locale  string
}

// GroupCounts backs the tab badges ("3 areas, 5 labels").
type GroupCounts struct {
	Areas      int `json:"areas"`
	Labels     int `json:"labels"`
	Categories int `json:"categories"`
}

// Event types recorded in the snooze log.
const (
	EventPause  = "PAUSE"
	EventResume = "RESUME"
	EventCancel = "CANCEL"
	EventAdjust = "ADJUST"
)

type Service struct {
	Snooze
	Automations
	Monitoring
	Preferences
	EventLog
	Expiry
	Authorization
}

// Deps carries everything the composed services need.
type Deps struct {
	Repos       *repository.Repository
	Platform    platform.Client
	Markers     registry.Markers
	SnapshotTTL time.Duration
	SigningKey  string
}

// NewService wires the repository layer and platform client into concrete services.
func NewService(d Deps) *Service {
	return &Service{
		Snooze:        NewSnoozeService(d.Repos.Snoozes, d.Repos.Events, d.Platform),
		Automations:   NewAutomationsService(d.Platform, d.Markers, d.SnapshotTTL),
		Monitoring:    NewMonitoringService(d.Repos.Snoozes),
		Preferences:   NewPreferencesService(d.Repos.Prefs),
		EventLog:      NewEventLogService(d.Repos.Events),
		Expiry:        NewExpiryService(d.Repos.Snoozes, d.Repos.Events),
		Authorization: NewAuthService(d.Repos.Auth, d.SigningKey),
	}
}
