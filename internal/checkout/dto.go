package checkout

// ==================== REQUEST STRUCTS ====================

type ShippingInfoRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	RegionID  int64  `json:"region_id"`
	CommuneID int64  `json:"commune_id"`
}

type SubmitRequest struct {
	PaymentMethodID     int64                `json:"payment_method_id"`
	DeliveryMethod      string               `json:"delivery_method"`
	ShippingInfo        *ShippingInfoRequest `json:"shipping_info"`
	DestinationBranchID *int64               `json:"destination_branch_id"`
}

// ==================== RESPONSE STRUCTS ====================

const (
	StatusRedirect     = "REDIRECT"
	StatusOrderCreated = "ORDER_CREATED"
)

// SubmitResponse tells the UI where to go next: either auto-POST the token to
// the processor (REDIRECT) or show the confirmation view (ORDER_CREATED).
type SubmitResponse struct {
	Status      string `json:"status"`
	OrderID     int64  `json:"order_id,omitempty"`
	Message     string `json:"message,omitempty"`
	Token       string `json:"token,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}
