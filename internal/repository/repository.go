package repository

import (
	"context"
	"database/sql"
	"time"

	"automation_snooze/internal/models"
	"automation_snooze/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// SnoozeRepo stores the local mirror of paused automation windows.
type SnoozeRepo interface {
	Upsert(ctx context.Context, s models.Snooze) error
	Get(ctx context.Context, entityID string) (*models.Snooze, error)
	List(ctx context.Context) ([]models.Snooze, error)
	Delete(ctx context.Context, entityID string) error
	DeleteAll(ctx context.Context) error
	DeleteExpired(ctx context.Context, before time.Time) ([]models.Snooze, error)
}

// EventRepo is the append-only snooze event log.
type EventRepo interface {
	Append(ctx context.Context, e models.SnoozeEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.SnoozeEvent, error)
}

// PrefRepo persists the per-user "last used duration" preference.
type PrefRepo interface {
	Save(ctx context.Context, userID int, p models.DurationPreference) error
	Load(ctx context.Context, userID int) (*models.DurationPreference, error)
}

type Repository struct {
	Snoozes SnoozeRepo
	Events  EventRepo
	Prefs   PrefRepo
	Auth    Authorization
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Snoozes: NewSnoozeSQLite(conn),
		Events:  NewEventSQLite(conn),
		Prefs:   NewPrefSQLite(conn),
		Auth:    NewUserRepository(conn),
	}
}

// InitDB opens the backing SQLite file and applies the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
