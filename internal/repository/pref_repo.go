package repository

import (
	"context"
	"database/sql"
	"errors"

	"automation_snooze/internal/models"
)

type PrefSQLite struct {
	db *sql.DB
}

func NewPrefSQLite(db *sql.DB) *PrefSQLite { return &PrefSQLite{db: db} }

var _ PrefRepo = (*PrefSQLite)(nil)

const (
	upsertPrefSQL = `
		INSERT INTO duration_prefs (user_id, minutes, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			minutes=excluded.minutes,
			saved_at=excluded.saved_at
	`
	selectPrefSQL = `SELECT minutes, saved_at FROM duration_prefs WHERE user_id = ?`
)

// Save stores the minute scalar; the split duration is derived on read.
func (r *PrefSQLite) Save(ctx context.Context, userID int, p models.DurationPreference) error {
	_, err := r.db.ExecContext(ctx, upsertPrefSQL, userID, p.Minutes, p.Timestamp)
	return err
}

// Load returns the stored preference, or nil when the user has none.
func (r *PrefSQLite) Load(ctx context.Context, userID int) (*models.DurationPreference, error) {
	row := r.db.QueryRowContext(ctx, selectPrefSQL, userID)

	var p models.DurationPreference
	if err := row.Scan(&p.Minutes, &p.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
