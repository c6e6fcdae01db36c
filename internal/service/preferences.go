package service

import (
	"context"
	"errors"
	"time"

	"automation_snooze/internal/models"
	"automation_snooze/internal/repository"
	"automation_snooze/internal/timeutil"
)

var ErrInvalidMinutes = errors.New("minutes must be a positive integer")

type PreferencesService struct {
	prefRepo repository.PrefRepo
	now      func() time.Time
}

func NewPreferencesService(prefRepo repository.PrefRepo) *PreferencesService {
	return &PreferencesService{prefRepo: prefRepo, now: time.Now}
}

// SaveLastUsed stores the minute scalar and returns the full blob with the
// derived split duration and write timestamp.
func (s *PreferencesService) SaveLastUsed(ctx context.Context, userID, minutes int) (models.DurationPreference, error) {
	if minutes <= 0 {
		return models.DurationPreference{}, ErrInvalidMinutes
	}
	p := models.DurationPreference{
		Minutes:   minutes,
		Duration:  timeutil.MinutesToDuration(minutes),
		Timestamp: s.now().UnixMilli(),
	}
	if err := s.prefRepo.Save(ctx, userID, p); err != nil {
		return models.DurationPreference{}, err
	}
	return p, nil
}

// LastUsed returns the stored preference with the split duration rebuilt from
// the minute scalar, or nil when none (or an invalid one) is stored.
func (s *PreferencesService) LastUsed(ctx context.Context, userID int) (*models.DurationPreference, error) {
	p, err := s.prefRepo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.Minutes <= 0 {
		return nil, nil
	}
	p.Duration = timeutil.MinutesToDuration(p.Minutes)
	return p, nil
}
