package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ferremas-storefront/internal/backend"
	"ferremas-storefront/internal/cache"
)

type BackendClient interface {
	GetRegions(ctx context.Context) ([]backend.Region, error)
	GetCommunes(ctx context.Context, regionID int64) ([]backend.Commune, error)
	GetBranches(ctx context.Context) ([]backend.Branch, error)
}

// Service serves the geography the checkout address form needs, plus the
// branches offered as pickup destinations. Regions and communes change
// rarely, so they sit behind a generous TTL.
type Service interface {
	Regions(ctx context.Context) ([]backend.Region, error)
	Communes(ctx context.Context, regionID int64) ([]backend.Commune, error)
	Branches(ctx context.Context) ([]backend.Branch, error)
}

type service struct {
	backend BackendClient
	cache   cache.Cache
	logger  *zap.Logger
}

const (
	regionsCacheKey  = "locations:regions"
	branchesCacheKey = "locations:branches"
	referenceTTL     = time.Hour
)

func NewService(b BackendClient, c cache.Cache, logger ...*zap.Logger) Service {
	l := zap.L().Named("locations.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("locations.service")
	}
	if c == nil {
		c = cache.NewNop()
	}
	return &service{backend: b, cache: c, logger: l}
}

func (s *service) Regions(ctx context.Context) ([]backend.Region, error) {
	if raw, ok := s.cache.Get(ctx, regionsCacheKey); ok {
		var regions []backend.Region
		if err := json.Unmarshal(raw, &regions); err == nil {
			return regions, nil
		}
	}

	regions, err := s.backend.GetRegions(ctx)
	if err != nil {
		s.logger.Warn("regions fetch failed", zap.Error(err))
		return nil, err
	}

	if raw, err := json.Marshal(regions); err == nil {
		s.cache.Set(ctx, regionsCacheKey, raw, referenceTTL)
	}
	return regions, nil
}

func (s *service) Communes(ctx context.Context, regionID int64) ([]backend.Commune, error) {
	key := fmt.Sprintf("locations:communes:%d", regionID)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var communes []backend.Commune
		if err := json.Unmarshal(raw, &communes); err == nil {
			return communes, nil
		}
	}

	communes, err := s.backend.GetCommunes(ctx, regionID)
	if err != nil {
		s.logger.Warn("communes fetch failed", zap.Int64("region_id", regionID), zap.Error(err))
		return nil, err
	}

	if raw, err := json.Marshal(communes); err == nil {
		s.cache.Set(ctx, key, raw, referenceTTL)
	}
	return communes, nil
}

func (s *service) Branches(ctx context.Context) ([]backend.Branch, error) {
	if raw, ok := s.cache.Get(ctx, branchesCacheKey); ok {
		var branches []backend.Branch
		if err := json.Unmarshal(raw, &branches); err == nil {
			return branches, nil
		}
	}

	branches, err := s.backend.GetBranches(ctx)
	if err != nil {
		s.logger.Warn("branches fetch failed", zap.Error(err))
		return nil, err
	}

	if raw, err := json.Marshal(branches); err == nil {
		s.cache.Set(ctx, branchesCacheKey, raw, referenceTTL)
	}
	return branches, nil
}
