package service

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"automation_snooze/internal/models"
	"automation_snooze/internal/platform"
	"automation_snooze/internal/registry"
)

// Fallback bucket names for items without an area/label/category.
const (
	FallbackArea     = "Unassigned"
	FallbackLabel    = "Unlabeled"
	FallbackCategory = "Uncategorized"
)

const (
	defaultSnapshotTTL = 30 * time.Second
	snapshotCacheKey   = "snapshot"
)

var ErrUnknownGroupKey = errors.New("unknown group key: use area, label, or category")

// AutomationsService serves the automation list from a TTL-cached platform
// snapshot, so bursts of list requests don't hammer the platform.
type AutomationsService struct {
	platform platform.Client
	markers  registry.Markers
	cache    *expirable.LRU[string, models.Snapshot]
}

func NewAutomationsService(pc platform.Client, markers registry.Markers, ttl time.Duration) *AutomationsService {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &AutomationsService{
		platform: pc,
		markers:  markers,
		cache:    expirable.NewLRU[string, models.Snapshot](1, nil, ttl),
	}
}

// List filters by free text and groups by the requested key. An empty GroupBy
// returns a single unnamed group holding the flat filtered list.
func (s *AutomationsService) List(ctx context.Context, p ListParams) ([]registry.Group, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := registry.Filter(snap.Automations, p.Query, s.markers)

	switch p.GroupBy {
	case "":
		return []registry.Group{{Name: "", Items: items}}, nil
	case "area":
		return registry.GroupBy(items, registry.AreaKeys, FallbackArea), nil
	case "label":
		return registry.GroupBy(items, registry.LabelKeys(snap.Labels), FallbackLabel), nil
	case "category":
		return registry.GroupBy(items, registry.CategoryKeys(snap.Categories), FallbackCategory), nil
	default:
		return nil, ErrUnknownGroupKey
	}
}

// Counts reports distinct areas/labels/categories across the full snapshot.
func (s *AutomationsService) Counts(ctx context.Context) (GroupCounts, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return GroupCounts{}, err
	}
	return GroupCounts{
		Areas:      registry.UniqueKeyCount(snap.Automations, registry.AreaKeys),
		Labels:     registry.UniqueKeyCount(snap.Automations, registry.LabelKeys(snap.Labels)),
		Categories: registry.UniqueKeyCount(snap.Automations, registry.CategoryKeys(snap.Categories)),
	}, nil
}

func (s *AutomationsService) snapshot(ctx context.Context) (models.Snapshot, error) {
	if snap, ok := s.cache.Get(snapshotCacheKey); ok {
		return snap, nil
	}
	snap, err := s.platform.Snapshot(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	s.cache.Add(snapshotCacheKey, snap)
	return snap, nil
}
