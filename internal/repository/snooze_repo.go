package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"automation_snooze/internal/models"
)

type SnoozeSQLite struct {
	db *sql.DB
}

func NewSnoozeSQLite(db *sql.DB) *SnoozeSQLite { return &SnoozeSQLite{db: db} }

var _ SnoozeRepo = (*SnoozeSQLite)(nil)

const (
	upsertSnoozeSQL = `
		INSERT INTO snoozes (id, entity_id, disable_at, resume_at, duration_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(entity_id) DO UPDATE SET
			id=excluded.id,
			disable_at=excluded.disable_at,
			resume_at=excluded.resume_at,
			duration_minutes=excluded.duration_minutes,
			created_at=excluded.created_at
	`

	selectSnoozeSQL  = `SELECT id, entity_id, disable_at, resume_at, duration_minutes, created_at FROM snoozes WHERE entity_id = ?`
	listSnoozesSQL   = `SELECT id, entity_id, disable_at, resume_at, duration_minutes, created_at FROM snoozes ORDER BY resume_at ASC`
	listExpiredSQL   = `SELECT id, entity_id, disable_at, resume_at, duration_minutes, created_at FROM snoozes WHERE resume_at <= ?`
	deleteSnoozeSQL  = `DELETE FROM snoozes WHERE entity_id = ?`
	deleteAllSQL     = `DELETE FROM snoozes`
	deleteExpiredSQL = `DELETE FROM snoozes WHERE resume_at <= ?`
)

// Upsert inserts or replaces the window for the snooze's entity. Times are
// persisted in UTC.
func (r *SnoozeSQLite) Upsert(ctx context.Context, s models.Snooze) error {
	var disableAt any
	if s.DisableAt != nil {
		disableAt = s.DisableAt.UTC()
	}
	created := s.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, upsertSnoozeSQL,
		s.ID,
		s.EntityID,
		disableAt,
		s.ResumeAt.UTC(),
		s.DurationMinutes,
		created.UTC(),
	)
	return err
}

// Get returns the window for one entity, or nil when none exists.
func (r *SnoozeSQLite) Get(ctx context.Context, entityID string) (*models.Snooze, error) {
	row := r.db.QueryRowContext(ctx, selectSnoozeSQL, entityID)
	s, err := scanSnooze(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SnoozeSQLite) List(ctx context.Context) ([]models.Snooze, error) {
	return r.queryMany(ctx, listSnoozesSQL)
}

func (r *SnoozeSQLite) Delete(ctx context.Context, entityID string) error {
	_, err := r.db.ExecContext(ctx, deleteSnoozeSQL, entityID)
	return err
}

func (r *SnoozeSQLite) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, deleteAllSQL)
	return err
}

// DeleteExpired removes windows whose resume time is at or before the cutoff
// and returns the removed rows so callers can log them.
func (r *SnoozeSQLite) DeleteExpired(ctx context.Context, before time.Time) ([]models.Snooze, error) {
	expired, err := r.queryMany(ctx, listExpiredSQL, before.UTC())
	if err != nil {
		return nil, err
	}
	if len(expired) == 0 {
		return nil, nil
	}
	if _, err := r.db.ExecContext(ctx, deleteExpiredSQL, before.UTC()); err != nil {
		return nil, err
	}
	return expired, nil
}

func (r *SnoozeSQLite) queryMany(ctx context.Context, query string, args ...any) ([]models.Snooze, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Snooze
	for rows.Next() {
		s, err := scanSnooze(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSnooze(scan func(dest ...any) error) (models.Snooze, error) {
	var s models.Snooze
	var disableAt sql.NullTime
	if err := scan(&s.ID, &s.EntityID, &disableAt, &s.ResumeAt, &s.DurationMinutes, &s.CreatedAt); err != nil {
		return models.Snooze{}, err
	}
	if disableAt.Valid {
		t := disableAt.Time.UTC()
		s.DisableAt = &t
	}
	s.ResumeAt = s.ResumeAt.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
	return s, nil
}
