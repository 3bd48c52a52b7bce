package cart

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	carterrors "ferremas-storefront/internal/cart/errors"
)

//go:generate mockgen -source=service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, session string) Snapshot
	Count(ctx context.Context, session string) int64

	AddLine(ctx context.Context, session string, req AddLineRequest) (Snapshot, error)
	UpdateQuantity(ctx context.Context, session string, productID int64, req UpdateQuantityRequest) Snapshot

	Increment(ctx context.Context, session string, productID int64) (Snapshot, error)
	Decrement(ctx context.Context, session string, productID int64) (Snapshot, error)

	RemoveLine(ctx context.Context, session string, productID int64) Snapshot
	Clear(ctx context.Context, session string)
	Destroy(ctx context.Context, session string)
}

type service struct {
	store    *Store
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(store *Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("cart.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.service")
	}
	return &service{
		store:    store,
		validate: validator.New(),
		logger:   l,
	}
}

func (s *service) Detail(_ context.Context, session string) Snapshot {
	return s.store.Snapshot(session)
}

func (s *service) Count(_ context.Context, session string) int64 {
	return s.store.Snapshot(session).TotalItems
}

// addLineError maps a validator failure to the field-specific cart error.
func addLineError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "ProductID":
				return carterrors.ErrInvalidProduct
			case "Quantity":
				return carterrors.ErrInvalidQuantity
			}
		}
	}
	return carterrors.ErrInvalidLine
}

func (s *service) AddLine(_ context.Context, session string, req AddLineRequest) (Snapshot, error) {
	if err := s.validate.Struct(req); err != nil {
		return s.store.Snapshot(session), addLineError(err)
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	snap, err := s.store.AddLine(session, Line{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  qty,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		s.logger.Warn("add line rejected",
			zap.String("session", session),
			zap.Int64("product_id", req.ProductID),
			zap.Error(err),
		)
		return snap, err
	}
	return snap, nil
}

func (s *service) UpdateQuantity(_ context.Context, session string, productID int64, req UpdateQuantityRequest) Snapshot {
	return s.store.SetQuantity(session, productID, req.Quantity)
}

func (s *service) Increment(_ context.Context, session string, productID int64) (Snapshot, error) {
	return s.store.Increment(session, productID)
}

func (s *service) Decrement(_ context.Context, session string, productID int64) (Snapshot, error) {
	return s.store.Decrement(session, productID)
}

func (s *service) RemoveLine(_ context.Context, session string, productID int64) Snapshot {
	return s.store.RemoveLine(session, productID)
}

func (s *service) Clear(_ context.Context, session string) {
	s.store.Clear(session)
}

func (s *service) Destroy(_ context.Context, session string) {
	s.store.Destroy(session)
}
