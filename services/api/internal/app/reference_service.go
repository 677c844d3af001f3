package app

import (
	"context"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/sirupsen/logrus"
)

type ReferenceRepository interface {
	ListCategories(ctx context.Context) ([]domain.SportCategory, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	ListAreas(ctx context.Context) ([]domain.Area, error)
}

// ReferenceCache stores reference lists under a key. Load reports whether
// the key was present.
type ReferenceCache interface {
	Load(ctx context.Context, key string, dst any) (bool, error)
	Store(ctx context.Context, key string, value any) error
}

const (
	categoriesKey = "reference:categories"
	citiesKey     = "reference:cities"
	areasKey      = "reference:areas"
)

// ReferenceService serves categories, cities and areas, reading through an
// optional cache. Cache failures are logged and fall back to the repository.
type ReferenceService struct {
	repo   ReferenceRepository
	cache  ReferenceCache
	logger logrus.FieldLogger
}

type ReferenceServiceOption func(*ReferenceService)

func WithReferenceCache(cache ReferenceCache) ReferenceServiceOption {
	return func(s *ReferenceService) {
		s.cache = cache
	}
}

func WithReferenceLogger(logger logrus.FieldLogger) ReferenceServiceOption {
	return func(s *ReferenceService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewReferenceService(repo ReferenceRepository, opts ...ReferenceServiceOption) *ReferenceService {
	svc := &ReferenceService{repo: repo, logger: discardLogger()}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *ReferenceService) ListCategories(ctx context.Context) ([]domain.SportCategory, error) {
	return readThrough(ctx, s, categoriesKey, s.repo.ListCategories)
}

func (s *ReferenceService) ListCities(ctx context.Context) ([]domain.City, error) {
	return readThrough(ctx, s, citiesKey, s.repo.ListCities)
}

// ListAreas returns all areas, or only those of cityID when it is set.
func (s *ReferenceService) ListAreas(ctx context.Context, cityID string) ([]domain.Area, error) {
	areas, err := readThrough(ctx, s, areasKey, s.repo.ListAreas)
	if err != nil {
		return nil, err
	}
	if cityID == "" {
		return areas, nil
	}
	return domain.FilterAreas(areas, cityID), nil
}

func readThrough[T any](ctx context.Context, s *ReferenceService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		var cached []T
		found, err := s.cache.Load(ctx, key, &cached)
		if err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("reference cache read")
		} else if found {
			return cached, nil
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Store(ctx, key, items); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("reference cache write")
		}
	}
	return items, nil
}
