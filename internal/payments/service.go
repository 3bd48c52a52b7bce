package payments

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"ferremas-storefront/internal/backend"
	"ferremas-storefront/internal/cache"
)

type BackendClient interface {
	GetPaymentMethods(ctx context.Context) ([]backend.PaymentMethod, error)
}

type Service interface {
	Methods(ctx context.Context) ([]backend.PaymentMethod, error)
}

type service struct {
	backend BackendClient
	cache   cache.Cache
	logger  *zap.Logger
}

const (
	methodsCacheKey = "payments:methods"
	methodsCacheTTL = 10 * time.Minute
)

func NewService(b BackendClient, c cache.Cache, logger ...*zap.Logger) Service {
	l := zap.L().Named("payments.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payments.service")
	}
	if c == nil {
		c = cache.NewNop()
	}
	return &service{backend: b, cache: c, logger: l}
}

func (s *service) Methods(ctx context.Context) ([]backend.PaymentMethod, error) {
	if raw, ok := s.cache.Get(ctx, methodsCacheKey); ok {
		var methods []backend.PaymentMethod
		if err := json.Unmarshal(raw, &methods); err == nil {
			return methods, nil
		}
	}

	methods, err := s.backend.GetPaymentMethods(ctx)
	if err != nil {
		s.logger.Warn("payment methods fetch failed", zap.Error(err))
		return nil, err
	}

	if raw, err := json.Marshal(methods); err == nil {
		s.cache.Set(ctx, methodsCacheKey, raw, methodsCacheTTL)
	}
	return methods, nil
}
