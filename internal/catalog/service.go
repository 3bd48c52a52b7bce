package catalog

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
	GetProducts(ctx context.Context) ([]backend.Product, error)
	GetProduct(ctx context.Context, id int64) (backend.Product, error)
}

// Service proxies the product catalog for the storefront pages. Listings are
// cached briefly; stock shown here is informational, the backend re-checks it
// at order time.
type Service interface {
	List(ctx context.Context) ([]backend.Product, error)
	Detail(ctx context.Context, id int64) (backend.Product, error)
}

type service struct {
	backend BackendClient
	cache   cache.Cache
	logger  *zap.Logger
}

const (
	listCacheKey = "catalog:products"
	catalogTTL   = 2 * time.Minute
)

func NewService(b BackendClient, c cache.Cache, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	if c == nil {
		c = cache.NewNop()
	}
	return &service{backend: b, cache: c, logger: l}
}

func (s *service) List(ctx context.Context) ([]backend.Product, error) {
	if raw, ok := s.cache.Get(ctx, listCacheKey); ok {
		var products []backend.Product
		if err := json.Unmarshal(raw, &products); err == nil {
			return products, nil
		}
	}

	products, err := s.backend.GetProducts(ctx)
	if err != nil {
		s.logger.Warn("product list fetch failed", zap.Error(err))
		return nil, err
	}

	if raw, err := json.Marshal(products); err == nil {
		s.cache.Set(ctx, listCacheKey, raw, catalogTTL)
	}
	return products, nil
}

func (s *service) Detail(ctx context.Context, id int64) (backend.Product, error) {
	key := fmt.Sprintf("catalog:product:%d", id)

	if raw, ok := s.cache.Get(ctx, key); ok {
		var product backend.Product
		if err := json.Unmarshal(raw, &product); err == nil {
			return product, nil
		}
	}

	product, err := s.backend.GetProduct(ctx, id)
	if err != nil {
		s.logger.Warn("product fetch failed", zap.Int64("product_id", id), zap.Error(err))
		return backend.Product{}, err
	}

	if raw, err := json.Marshal(product); err == nil {
		s.cache.Set(ctx, key, raw, catalogTTL)
	}
	return product, nil
}
