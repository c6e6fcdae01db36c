package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"automation_snooze/internal/models"
	"automation_snooze/internal/platform"
	"automation_snooze/internal/repository"
	"automation_snooze/internal/timeutil"
)

// ResumeGrace absorbs UI/network latency between validation and submission:
// a resume time up to this far in the past is still accepted.
const ResumeGrace = 5 * time.Second

// Domain errors for snooze flows.
var (
	ErrNoEntities          = errors.New("no automations selected")
	ErrInvalidDuration     = errors.New("invalid duration: use formats like 2h30m, 1d, 45m, or bare minutes")
	ErrInvalidResumeAt     = errors.New("invalid resume time: expected an ISO-8601 instant")
	ErrInvalidDisableAt    = errors.New("invalid disable time: expected an ISO-8601 instant")
	ErrResumeNotFuture     = errors.New("resume time must be in the future")
	ErrResumeBeforeDisable = errors.New("disable time must be before resume time")
	ErrNotSnoozed          = errors.New("automation is not snoozed")
	ErrNotScheduled        = errors.New("automation has no scheduled snooze")
)

type SnoozeService struct {
	snoozeRepo repository.SnoozeRepo
	eventRepo  repository.EventRepo
	platform   platform.Client
	now        func() time.Time
}

func NewSnoozeService(snoozeRepo repository.SnoozeRepo, eventRepo repository.EventRepo, pc platform.Client) *SnoozeService {
	return &SnoozeService{
		snoozeRepo: snoozeRepo,
		eventRepo:  eventRepo,
		platform:   pc,
		now:        time.Now,
	}
}

// Pause disables the selected automations until a resume instant. Duration
// mode converts free-text input to a day/hour/minute payload; schedule mode
// validates the caller-built ISO instants and forwards them untouched.
func (s *SnoozeService) Pause(ctx context.Context, p PauseParams) ([]models.Snooze, error) {
	if len(p.EntityIDs) == 0 {
		return nil, ErrNoEntities
	}
	if p.ResumeAt != "" {
		return s.pauseSchedule(ctx, p)
	}
	return s.pauseDuration(ctx, p)
}

func (s *SnoozeService) pauseDuration(ctx context.Context, p PauseParams) ([]models.Snooze, error) {
	d := timeutil.ParseDurationInput(p.DurationInput)
	if d == nil {
		return nil, ErrInvalidDuration
	}
	now := s.now()
	minutes := timeutil.DurationToMinutes(*d)
	resumeAt := now.Add(time.Duration(minutes) * time.Minute)

	if err := s.platform.Pause(ctx, p.EntityIDs, *d); err != nil {
		return nil, err
	}

	created, err := s.storeWindows(ctx, p.EntityIDs, nil, resumeAt, minutes, now)
	if err != nil {
		return nil, err
	}
	s.appendEvent(ctx, EventPause, "", "Automations paused", map[string]any{
		"mode":       "duration",
		"entity_ids": p.EntityIDs,
		"minutes":    minutes,
		"resume_at":  resumeAt.UTC(),
	}, now)
	return created, nil
}

func (s *SnoozeService) pauseSchedule(ctx context.Context, p PauseParams) ([]models.Snooze, error) {
	now := s.now()

	resumeAt, err := time.Parse(time.RFC3339, p.ResumeAt)
	if err != nil {
		return nil, ErrInvalidResumeAt
	}
	if !resumeAt.After(now.Add(-ResumeGrace)) {
		return nil, ErrResumeNotFuture
	}

	var disableAt *time.Time
	if p.DisableAt != "" {
		t, err := time.Parse(time.RFC3339, p.DisableAt)
		if err != nil {
			return nil, ErrInvalidDisableAt
		}
		if !t.Before(resumeAt) {
			return nil, ErrResumeBeforeDisable
		}
		disableAt = &t
	}

	if err := s.platform.PauseSchedule(ctx, p.EntityIDs, p.ResumeAt, p.DisableAt); err != nil {
		return nil, err
	}

	created, err := s.storeWindows(ctx, p.EntityIDs, disableAt, resumeAt, 0, now)
	if err != nil {
		return nil, err
	}
	s.appendEvent(ctx, EventPause, "", "Automations paused on schedule", map[string]any{
		"mode":       "schedule",
		"entity_ids": p.EntityIDs,
		"resume_at":  p.ResumeAt,
		"disable_at": p.DisableAt,
	}, now)
	return created, nil
}

// PauseByArea pauses every automation in an area. The platform resolves area
// membership, so no local windows are mirrored.
func (s *SnoozeService) PauseByArea(ctx context.Context, areaID, durationInput string) (models.ParsedDuration, error) {
	d := timeutil.ParseDurationInput(durationInput)
	if d == nil {
		return models.ParsedDuration{}, ErrInvalidDuration
	}
	if err := s.platform.PauseByArea(ctx, areaID, *d); err != nil {
		return models.ParsedDuration{}, err
	}
	s.appendEvent(ctx, EventPause, "", "Area paused", map[string]any{
		"area_id": areaID,
		"minutes": timeutil.DurationToMinutes(*d),
	}, s.now())
	return *d, nil
}

// PauseByLabel pauses every automation carrying a label.
func (s *SnoozeService) PauseByLabel(ctx context.Context, labelID, durationInput string) (models.ParsedDuration, error) {
	d := timeutil.ParseDurationInput(durationInput)
	if d == nil {
		return models.ParsedDuration{}, ErrInvalidDuration
	}
	if err := s.platform.PauseByLabel(ctx, labelID, *d); err != nil {
		return models.ParsedDuration{}, err
	}
	s.appendEvent(ctx, EventPause, "", "Label paused", map[string]any{
		"label_id": labelID,
		"minutes":  timeutil.DurationToMinutes(*d),
	}, s.now())
	return *d, nil
}

// Adjust re-bases an active window's resume time to now + the parsed duration.
func (s *SnoozeService) Adjust(ctx context.Context, entityID, durationInput string) (*models.Snooze, error) {
	d := timeutil.ParseDurationInput(durationInput)
	if d == nil {
		return nil, ErrInvalidDuration
	}
	existing, err := s.snoozeRepo.Get(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotSnoozed
	}

	if err := s.platform.Adjust(ctx, entityID, *d); err != nil {
		return nil, err
	}

	now := s.now()
	minutes := timeutil.DurationToMinutes(*d)
	existing.ResumeAt = now.Add(time.Duration(minutes) * time.Minute)
	existing.DurationMinutes = minutes
	if err := s.snoozeRepo.Upsert(ctx, *existing); err != nil {
		return nil, err
	}
	s.appendEvent(ctx, EventAdjust, entityID, "Snooze adjusted", map[string]any{
		"minutes":   minutes,
		"resume_at": existing.ResumeAt.UTC(),
	}, now)
	return existing, nil
}

// Cancel re-enables one automation now.
func (s *SnoozeService) Cancel(ctx context.Context, entityID string) error {
	if err := s.platform.Cancel(ctx, entityID); err != nil {
		return err
	}
	if err := s.snoozeRepo.Delete(ctx, entityID); err != nil {
		return err
	}
	s.appendEvent(ctx, EventCancel, entityID, "Snooze cancelled", nil, s.now())
	return nil
}

// CancelAll re-enables every snoozed automation.
func (s *SnoozeService) CancelAll(ctx context.Context) error {
	if err := s.platform.CancelAll(ctx); err != nil {
		return err
	}
	if err := s.snoozeRepo.DeleteAll(ctx); err != nil {
		return err
	}
	s.appendEvent(ctx, EventCancel, "", "All snoozes cancelled", nil, s.now())
	return nil
}

// CancelScheduled drops a window whose disable time has not arrived yet.
func (s *SnoozeService) CancelScheduled(ctx context.Context, entityID string) error {
	existing, err := s.snoozeRepo.Get(ctx, entityID)
	if err != nil {
		return err
	}
	now := s.now()
	if existing == nil || !existing.Scheduled(now) {
		return ErrNotScheduled
	}
	if err := s.platform.CancelScheduled(ctx, entityID); err != nil {
		return err
	}
	if err := s.snoozeRepo.Delete(ctx, entityID); err != nil {
		return err
	}
	s.appendEvent(ctx, EventCancel, entityID, "Scheduled snooze cancelled", nil, now)
	return nil
}

func (s *SnoozeService) storeWindows(ctx context.Context, entityIDs []string, disableAt *time.Time, resumeAt time.Time, minutes int, now time.Time) ([]models.Snooze, error) {
	created := make([]models.Snooze, 0, len(entityIDs))
	for _, id := range entityIDs {
		sn := models.Snooze{
			ID:              uuid.NewString(),
			EntityID:        id,
			DisableAt:       disableAt,
			ResumeAt:        resumeAt,
			DurationMinutes: minutes,
			CreatedAt:       now,
		}
		if err := s.snoozeRepo.Upsert(ctx, sn); err != nil {
			return nil, err
		}
		created = append(created, sn)
	}
	return created, nil
}

// appendEvent logs best-effort; a failed log never fails the operation.
func (s *SnoozeService) appendEvent(ctx context.Context, typ, entityID, description string, meta map[string]any, now time.Time) {
	_ = s.eventRepo.Append(ctx, models.SnoozeEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now.UTC(),
		Type:        typ,
		EntityID:    entityID,
		Description: description,
		Metadata:    meta,
	})
}
