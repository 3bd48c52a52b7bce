package backend

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

type DeliveryMethod string

const (
	DeliveryHome   DeliveryMethod = "DESPACHO_DOMICILIO"
	DeliveryPickup DeliveryMethod = "RETIRO_TIENDA"
)

func (m DeliveryMethod) Valid() bool {
	return m == DeliveryHome || m == DeliveryPickup
}

type OrderLine struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type ShippingInfo struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone,omitempty"`
	RegionID  int64  `json:"region_id,omitempty"`
	CommuneID int64  `json:"commune_id,omitempty"`
}

type CreateOrderRequest struct {
	PaymentMethodID     int64          `json:"payment_method_id"`
	CartLines           []OrderLine    `json:"cart_lines"`
	ShippingInfo        *ShippingInfo  `json:"shipping_info,omitempty"`
	DeliveryMethod      DeliveryMethod `json:"delivery_method"`
	DestinationBranchID *int64         `json:"destination_branch_id,omitempty"`
}

// RedirectPayment instructs the client to auto-POST the token to the
// processor's URL, a full-page navigation out of the storefront.
type RedirectPayment struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// OrderCreated means the order settled without leaving the site
// (e.g. bank transfer).
type OrderCreated struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message,omitempty"`
}

// CreateOrderResult is the decoded order-creation response. Exactly one of
// Redirect or Created is non-nil; callers switch on which.
type CreateOrderResult struct {
	Redirect *RedirectPayment
	Created  *OrderCreated
}

// ErrUnexpectedResponse means the backend replied 2xx with a response_type
// this client does not know. Never swallowed: the checkout flow surfaces it.
var ErrUnexpectedResponse = errors.New("backend: unexpected order-creation response shape")

const (
	responseTypeRedirect     = "REDIRECT"
	responseTypeOrderCreated = "ORDER_CREATED"
)

// createOrderEnvelope is the raw wire shape before discrimination.
type createOrderEnvelope struct {
	ResponseType string `json:"response_type"`
	Token        string `json:"token"`
	RedirectURL  string `json:"redirect_url"`
	OrderID      int64  `json:"order_id"`
	Message      string `json:"message"`
}

func (e createOrderEnvelope) decode() (CreateOrderResult, error) {
	switch e.ResponseType {
	case responseTypeRedirect:
		if e.Token == "" || e.RedirectURL == "" {
			return CreateOrderResult{}, ErrUnexpectedResponse
		}
		return CreateOrderResult{Redirect: &RedirectPayment{
			Token:       e.Token,
			RedirectURL: e.RedirectURL,
		}}, nil
	case responseTypeOrderCreated:
		if e.OrderID == 0 {
			return CreateOrderResult{}, ErrUnexpectedResponse
		}
		return CreateOrderResult{Created: &OrderCreated{
			OrderID: e.OrderID,
			Message: e.Message,
		}}, nil
	default:
		return CreateOrderResult{}, ErrUnexpectedResponse
	}
}

func (c *Client) CreateOrder(ctx context.Context, auth Auth, req CreateOrderRequest) (CreateOrderResult, error) {
	var raw json.RawMessage
	if err := c.post(ctx, "/api/orders/create/", auth, req, &raw); err != nil {
		return CreateOrderResult{}, err
	}

	var env createOrderEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return CreateOrderResult{}, ErrUnexpectedResponse
	}
	return env.decode()
}
