package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"ferremas-storefront/internal/backend"
	"ferremas-storefront/internal/cart"
	"ferremas-storefront/internal/messaging/kafka/producer"
)

// BackendClient is the slice of the backend surface checkout needs.
type BackendClient interface {
	CreateOrder(ctx context.Context, auth backend.Auth, req backend.CreateOrderRequest) (backend.CreateOrderResult, error)
}

//go:generate mockgen -source=service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, session string, auth backend.Auth, req SubmitRequest) (SubmitResponse, error)
}

type service struct {
	backend   BackendClient
	cartSvc   cart.Service
	publisher producer.Publisher
	validate  *validator.Validate
	logger    *zap.Logger
}

type Deps struct {
	Backend   BackendClient
	CartSvc   cart.Service
	Publisher producer.Publisher
	Logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Backend == nil {
		panic("backend client cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Publisher == nil {
		deps.Publisher = producer.NewNopPublisher()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		backend:   deps.Backend,
		cartSvc:   deps.CartSvc,
		publisher: deps.Publisher,
		validate:  validator.New(),
		logger:    deps.Logger.Named("checkout.service"),
	}
}

// validateSubmit enforces the local gate: no request leaves the storefront
// until every required field for the chosen delivery method is present.
func (s *service) validateSubmit(snap cart.Snapshot, req SubmitRequest) error {
	if len(snap.Lines) == 0 {
		return ErrCartEmpty
	}
	if req.PaymentMethodID <= 0 {
		return ErrPaymentMethodRequired
	}

	switch backend.DeliveryMethod(req.DeliveryMethod) {
	case backend.DeliveryHome:
		info := req.ShippingInfo
		if info == nil ||
			info.FullName == "" ||
			info.Address == "" ||
			info.RegionID <= 0 ||
			info.CommuneID <= 0 ||
			s.validate.Var(info.Email, "required,email") != nil {
			return ErrShippingIncomplete
		}
	case backend.DeliveryPickup:
		if req.DestinationBranchID == nil || *req.DestinationBranchID <= 0 {
			return ErrBranchRequired
		}
	default:
		return ErrInvalidDeliveryMethod
	}

	return nil
}

func (s *service) Submit(ctx context.Context, session string, auth backend.Auth, req SubmitRequest) (SubmitResponse, error) {
	logger := s.logger.With(zap.String("session", session))

	// 1. Snapshot & validate locally
	snap := s.cartSvc.Detail(ctx, session)
	if err := s.validateSubmit(snap, req); err != nil {
		logger.Debug("checkout rejected locally", zap.Error(err))
		return SubmitResponse{}, err
	}

	// 2. Build the single order-creation request
	lines := make([]backend.OrderLine, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		lines = append(lines, backend.OrderLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	orderReq := backend.CreateOrderRequest{
		PaymentMethodID:     req.PaymentMethodID,
		CartLines:           lines,
		DeliveryMethod:      backend.DeliveryMethod(req.DeliveryMethod),
		DestinationBranchID: req.DestinationBranchID,
	}
	if req.ShippingInfo != nil {
		orderReq.ShippingInfo = &backend.ShippingInfo{
			FullName:  req.ShippingInfo.FullName,
			Email:     req.ShippingInfo.Email,
			Address:   req.ShippingInfo.Address,
			Phone:     req.ShippingInfo.Phone,
			RegionID:  req.ShippingInfo.RegionID,
			CommuneID: req.ShippingInfo.CommuneID,
		}
	}

	// 3. Submit
	result, err := s.backend.CreateOrder(ctx, auth, orderReq)
	if err != nil {
		// Cart stays intact on every failure path so the user can retry.
		if errors.Is(err, backend.ErrUnexpectedResponse) {
			logger.Error("backend returned unrecognized response shape", zap.Error(err))
			return SubmitResponse{}, ErrUnexpectedResponse
		}

		var backendErr *backend.Error
		if errors.As(err, &backendErr) && backendErr.Detail != "" {
			logger.Warn("backend rejected order", zap.Int("status", backendErr.StatusCode), zap.String("detail", backendErr.Detail))
			return SubmitResponse{}, ErrOrderFailed.WithMessage(backendErr.Detail)
		}

		logger.Error("order creation failed", zap.Error(err))
		return SubmitResponse{}, ErrOrderFailed
	}

	// 4. Branch on the declared response shape
	switch {
	case result.Redirect != nil:
		// Payment settles off-site; the cart survives until the processor
		// confirms and the backend reports ORDER_CREATED on return.
		logger.Info("checkout redirecting to payment",
			zap.String("redirect_url", result.Redirect.RedirectURL),
		)
		return SubmitResponse{
			Status:      StatusRedirect,
			Token:       result.Redirect.Token,
			RedirectURL: result.Redirect.RedirectURL,
		}, nil

	case result.Created != nil:
		// Order exists server-side; clear the cart so it can't be resubmitted.
		s.cartSvc.Clear(ctx, session)

		if err := s.publisher.PublishOrderPlaced(ctx, producer.OrderPlacedEvent{
			OrderID:    result.Created.OrderID,
			Session:    session,
			TotalItems: snap.TotalItems,
			TotalPrice: snap.TotalPrice.String(),
			PlacedAt:   time.Now().UTC(),
		}); err != nil {
			logger.Warn("order.placed event not published", zap.Int64("order_id", result.Created.OrderID), zap.Error(err))
		}

		logger.Info("order created", zap.Int64("order_id", result.Created.OrderID))
		return SubmitResponse{
			Status:  StatusOrderCreated,
			OrderID: result.Created.OrderID,
			Message: result.Created.Message,
		}, nil

	default:
		logger.Error("backend result carried neither branch")
		return SubmitResponse{}, ErrUnexpectedResponse
	}
}
