package service

import (
	"context"
	"time"

	"automation_snooze/internal/models"
	"automation_snooze/internal/repository"
	"automation_snooze/internal/timeutil"
)

type MonitoringService struct {
	snoozeRepo repository.SnoozeRepo
	now        func() time.Time
}

func NewMonitoringService(snoozeRepo repository.SnoozeRepo) *MonitoringService {
	return &MonitoringService{snoozeRepo: snoozeRepo, now: time.Now}
}

// ActiveSnoozes returns every mirrored window decorated with a countdown and
// a locale-aware absolute resume label. Windows whose resume instant has
// passed but which the expiry loop has not pruned yet show the past label.
func (s *MonitoringService) ActiveSnoozes(ctx context.Context, locale string) ([]models.SnoozeStatus, error) {
	rows, err := s.snoozeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]models.SnoozeStatus, 0, len(rows))
	for _, sn := range rows {
		out = append(out, models.SnoozeStatus{
			Snooze:      sn,
			Countdown:   timeutil.FormatCountdown(sn.ResumeAt, now, ""),
			ResumeLabel: timeutil.FormatDateTime(sn.ResumeAt.Local(), locale, now),
		})
	}
	return out, nil
}
