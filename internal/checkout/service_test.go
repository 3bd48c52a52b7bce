package checkout_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferremas-storefront/internal/backend"
	"ferremas-storefront/internal/cart"
	"ferremas-storefront/internal/checkout"
	"ferremas-storefront/internal/messaging/kafka/producer"
)

// ==================== FAKES ====================

type fakeBackend struct {
	calls   int
	lastReq backend.CreateOrderRequest
	result  backend.CreateOrderResult
	err     error
}

func (f *fakeBackend) CreateOrder(ctx context.Context, auth backend.Auth, req backend.CreateOrderRequest) (backend.CreateOrderResult, error) {
	f.calls++
	f.lastReq = req
	return f.result, f.err
}

type fakePublisher struct {
	events []producer.OrderPlacedEvent
	err    error
}

func (f *fakePublisher) PublishOrderPlaced(ctx context.Context, event producer.OrderPlacedEvent) error {
	f.events = append(f.events, event)
	return f.err
}

// ==================== HELPERS ====================

const session = "user:42"

func newFixture(t *testing.T, be *fakeBackend, pub producer.Publisher) (checkout.Service, cart.Service) {
	t.Helper()
	cartSvc := cart.NewService(cart.NewStore())
	svc := checkout.NewService(checkout.Deps{
		Backend:   be,
		CartSvc:   cartSvc,
		Publisher: pub,
	})
	return svc, cartSvc
}

func fillCart(t *testing.T, cartSvc cart.Service) {
	t.Helper()
	_, err := cartSvc.AddLine(context.Background(), session, cart.AddLineRequest{
		ProductID: 1,
		Name:      "Taladro",
		UnitPrice: decimal.NewFromInt(49990),
		Quantity:  1,
	})
	require.NoError(t, err)
	_, err = cartSvc.AddLine(context.Background(), session, cart.AddLineRequest{
		ProductID: 2,
		Name:      "Clavos 2\"",
		UnitPrice: decimal.NewFromInt(1990),
		Quantity:  3,
	})
	require.NoError(t, err)
}

func homeDeliveryRequest() checkout.SubmitRequest {
	return checkout.SubmitRequest{
		PaymentMethodID: 1,
		DeliveryMethod:  string(backend.DeliveryHome),
		ShippingInfo: &checkout.ShippingInfoRequest{
			FullName:  "Juana Pérez",
			Email:     "juana@example.com",
			Address:   "Av. Siempre Viva 742",
			Phone:     "+56911111111",
			RegionID:  13,
			CommuneID: 130,
		},
	}
}

func pickupRequest(branchID int64) checkout.SubmitRequest {
	return checkout.SubmitRequest{
		PaymentMethodID:     2,
		DeliveryMethod:      string(backend.DeliveryPickup),
		DestinationBranchID: &branchID,
	}
}

// ==================== VALIDATION GATE ====================

func TestCheckoutService_LocalValidation(t *testing.T) {
	t.Run("empty_cart_is_rejected_without_network_call", func(t *testing.T) {
		be := &fakeBackend{}
		svc, _ := newFixture(t, be, nil)

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, homeDeliveryRequest())

		assert.ErrorIs(t, err, checkout.ErrCartEmpty)
		assert.Equal(t, 0, be.calls)
	})

	t.Run("missing_payment_method", func(t *testing.T) {
		be := &fakeBackend{}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		req := homeDeliveryRequest()
		req.PaymentMethodID = 0

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, req)

		assert.ErrorIs(t, err, checkout.ErrPaymentMethodRequired)
		assert.Equal(t, 0, be.calls)
	})

	t.Run("home_delivery_missing_region", func(t *testing.T) {
		be := &fakeBackend{}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		req := homeDeliveryRequest()
		req.ShippingInfo.RegionID = 0

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, req)

		assert.ErrorIs(t, err, checkout.ErrShippingIncomplete)
		assert.Equal(t, 0, be.calls)
	})

	t.Run("home_delivery_missing_shipping_info", func(t *testing.T) {
		be := &fakeBackend{}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		req := homeDeliveryRequest()
		req.ShippingInfo = nil

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, req)

		assert.ErrorIs(t, err, checkout.ErrShippingIncomplete)
		assert.Equal(t, 0, be.calls)
	})

	t.Run("home_delivery_invalid_email", func(t *testing.T) {
		be := &fakeBackend{}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		req := homeDeliveryRequest()
		req.ShippingInfo.Email = "not-an-email"

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, req)

		assert.ErrorIs(t, err, checkout.ErrShippingIncomplete)
		assert.Equal(t, 0, be.calls)
	})

	t.Run("pickup_without_branch", func(t *testing.T) {
		be := &fakeBackend{}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		req := checkout.SubmitRequest{
			PaymentMethodID: 2,
			DeliveryMethod:  string(backend.DeliveryPickup),
		}

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, req)

		assert.ErrorIs(t, err, checkout.ErrBranchRequired)
		assert.Contains(t, err.Error(), "select a branch for pickup")
		assert.Equal(t, 0, be.calls)
	})

	t.Run("unknown_delivery_method", func(t *testing.T) {
		be := &fakeBackend{}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		req := checkout.SubmitRequest{PaymentMethodID: 1, DeliveryMethod: "COURIER_PIGEON"}

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, req)

		assert.ErrorIs(t, err, checkout.ErrInvalidDeliveryMethod)
		assert.Equal(t, 0, be.calls)
	})

	t.Run("validation_failure_keeps_cart", func(t *testing.T) {
		be := &fakeBackend{}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, pickupRequest(0))

		require.Error(t, err)
		assert.Equal(t, int64(4), cartSvc.Detail(context.Background(), session).TotalItems)
	})
}

// ==================== SUBMISSION & BRANCHING ====================

func TestCheckoutService_Submit(t *testing.T) {
	t.Run("order_created_clears_cart_and_publishes", func(t *testing.T) {
		be := &fakeBackend{
			result: backend.CreateOrderResult{
				Created: &backend.OrderCreated{OrderID: 42, Message: "pedido creado"},
			},
		}
		pub := &fakePublisher{}
		svc, cartSvc := newFixture(t, be, pub)
		fillCart(t, cartSvc)

		res, err := svc.Submit(context.Background(), session, backend.Auth{Bearer: "tok"}, homeDeliveryRequest())

		require.NoError(t, err)
		assert.Equal(t, checkout.StatusOrderCreated, res.Status)
		assert.Equal(t, int64(42), res.OrderID)
		assert.Equal(t, 1, be.calls)

		// the cart must be empty so the same items can't be resubmitted
		snap := cartSvc.Detail(context.Background(), session)
		assert.Equal(t, int64(0), snap.TotalItems)
		assert.Empty(t, snap.Lines)

		require.Len(t, pub.events, 1)
		assert.Equal(t, int64(42), pub.events[0].OrderID)
		assert.Equal(t, int64(4), pub.events[0].TotalItems)
	})

	t.Run("redirect_keeps_cart", func(t *testing.T) {
		be := &fakeBackend{
			result: backend.CreateOrderResult{
				Redirect: &backend.RedirectPayment{Token: "tok-123", RedirectURL: "https://pay.example.com/init"},
			},
		}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		res, err := svc.Submit(context.Background(), session, backend.Auth{}, pickupRequest(5))

		require.NoError(t, err)
		assert.Equal(t, checkout.StatusRedirect, res.Status)
		assert.Equal(t, "tok-123", res.Token)
		assert.Equal(t, "https://pay.example.com/init", res.RedirectURL)

		assert.Equal(t, int64(4), cartSvc.Detail(context.Background(), session).TotalItems)
	})

	t.Run("request_carries_full_cart_lines", func(t *testing.T) {
		be := &fakeBackend{
			result: backend.CreateOrderResult{Created: &backend.OrderCreated{OrderID: 1}},
		}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		branchID := int64(5)
		_, err := svc.Submit(context.Background(), session, backend.Auth{}, pickupRequest(branchID))
		require.NoError(t, err)

		req := be.lastReq
		require.Len(t, req.CartLines, 2)
		assert.Equal(t, int64(1), req.CartLines[0].ProductID)
		assert.Equal(t, int64(1), req.CartLines[0].Quantity)
		assert.True(t, req.CartLines[0].UnitPrice.Equal(decimal.NewFromInt(49990)))
		assert.Equal(t, int64(2), req.CartLines[1].ProductID)
		assert.Equal(t, int64(3), req.CartLines[1].Quantity)
		assert.Equal(t, backend.DeliveryPickup, req.DeliveryMethod)
		require.NotNil(t, req.DestinationBranchID)
		assert.Equal(t, branchID, *req.DestinationBranchID)
	})

	t.Run("backend_detail_error_is_surfaced_and_cart_kept", func(t *testing.T) {
		be := &fakeBackend{
			err: &backend.Error{StatusCode: http.StatusConflict, Detail: "stock insuficiente para el producto 2"},
		}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, homeDeliveryRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, checkout.ErrOrderFailed)
		assert.Contains(t, err.Error(), "stock insuficiente")
		assert.Equal(t, int64(4), cartSvc.Detail(context.Background(), session).TotalItems)
	})

	t.Run("network_error_falls_back_to_generic_message", func(t *testing.T) {
		be := &fakeBackend{err: errors.New("connection refused")}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, homeDeliveryRequest())

		assert.ErrorIs(t, err, checkout.ErrOrderFailed)
		assert.Equal(t, int64(4), cartSvc.Detail(context.Background(), session).TotalItems)
	})

	t.Run("unrecognized_response_shape_is_never_swallowed", func(t *testing.T) {
		be := &fakeBackend{err: backend.ErrUnexpectedResponse}
		svc, cartSvc := newFixture(t, be, nil)
		fillCart(t, cartSvc)

		_, err := svc.Submit(context.Background(), session, backend.Auth{}, homeDeliveryRequest())

		assert.ErrorIs(t, err, checkout.ErrUnexpectedResponse)
		assert.Equal(t, int64(4), cartSvc.Detail(context.Background(), session).TotalItems)
	})

	t.Run("publish_failure_does_not_fail_checkout", func(t *testing.T) {
		be := &fakeBackend{
			result: backend.CreateOrderResult{Created: &backend.OrderCreated{OrderID: 7}},
		}
		pub := &fakePublisher{err: errors.New("broker down")}
		svc, cartSvc := newFixture(t, be, pub)
		fillCart(t, cartSvc)

		res, err := svc.Submit(context.Background(), session, backend.Auth{}, homeDeliveryRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(7), res.OrderID)
	})
}
