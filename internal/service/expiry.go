package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"automation_snooze/internal/logger"
	"automation_snooze/internal/models"
	"automation_snooze/internal/repository"
)

// ExpiryService prunes elapsed snooze windows from the local mirror. The
// platform re-enables the automations itself; this loop only keeps the mirror
// and the event log in sync.
type ExpiryService struct {
	snoozeRepo repository.SnoozeRepo
	eventRepo  repository.EventRepo
	now        func() time.Time
}

func NewExpiryService(snoozeRepo repository.SnoozeRepo, eventRepo repository.EventRepo) *ExpiryService {
	return &ExpiryService{
		snoozeRepo: snoozeRepo,
		eventRepo:  eventRepo,
		now:        time.Now,
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (s *ExpiryService) Run(ctx context.Context, tick time.Duration) {
	log := logger.Get(logger.InfoLevel)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	log.Infow("expiry sweep started", "tick", tick.String())
	for {
		select {
		case <-ctx.Done():
			log.Infow("expiry sweep stopped")
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				log.Errorw("expiry sweep failed", "error", err)
			}
		}
	}
}

// Sweep removes every window whose resume time has passed and logs a RESUME
// event per removed row.
func (s *ExpiryService) Sweep(ctx context.Context) error {
	now := s.now()
	removed, err := s.snoozeRepo.DeleteExpired(ctx, now)
	if err != nil {
		return err
	}
	for _, sn := range removed {
		_ = s.eventRepo.Append(ctx, models.SnoozeEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  now.UTC(),
			Type:        EventResume,
			EntityID:    sn.EntityID,
			Description: "Snooze elapsed, automation resumed",
			Metadata: map[string]any{
				"resume_at": sn.ResumeAt.UTC(),
			},
		})
	}
	return nil
}
