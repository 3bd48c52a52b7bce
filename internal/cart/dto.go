package cart

import "github.com/shopspring/decimal"

// ==================== REQUEST STRUCTS ====================

type AddLineRequest struct {
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	Name      string          `json:"name" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity" validate:"gte=0"`
	ImageURL  string          `json:"image_url"`
}

type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// ==================== RESPONSE STRUCTS ====================

type CountResponse struct {
	Count int64 `json:"count"`
}
