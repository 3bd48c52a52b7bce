package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferremas-storefront/internal/cart"
	carterrors "ferremas-storefront/internal/cart/errors"
)

func validAddLineRequest() cart.AddLineRequest {
	return cart.AddLineRequest{
		ProductID: 7,
		Name:      "Martillo",
		UnitPrice: decimal.NewFromInt(12990),
		Quantity:  1,
	}
}

func TestCartService_AddLineValidation(t *testing.T) {
	svc := cart.NewService(cart.NewStore())

	t.Run("missing_product_id", func(t *testing.T) {
		req := validAddLineRequest()
		req.ProductID = 0

		_, err := svc.AddLine(context.Background(), "user:v1", req)

		assert.ErrorIs(t, err, carterrors.ErrInvalidProduct)
	})

	t.Run("negative_quantity", func(t *testing.T) {
		req := validAddLineRequest()
		req.Quantity = -2

		_, err := svc.AddLine(context.Background(), "user:v1", req)

		assert.ErrorIs(t, err, carterrors.ErrInvalidQuantity)
	})

	t.Run("missing_name", func(t *testing.T) {
		req := validAddLineRequest()
		req.Name = ""

		_, err := svc.AddLine(context.Background(), "user:v1", req)

		assert.ErrorIs(t, err, carterrors.ErrInvalidLine)
	})

	t.Run("rejected_request_leaves_cart_untouched", func(t *testing.T) {
		req := validAddLineRequest()
		req.Name = ""

		_, err := svc.AddLine(context.Background(), "user:v1", req)

		require.Error(t, err)
		assert.Empty(t, svc.Detail(context.Background(), "user:v1").Lines)
	})

	t.Run("zero_quantity_defaults_to_one", func(t *testing.T) {
		snap, err := svc.AddLine(context.Background(), "user:v2", cart.AddLineRequest{
			ProductID: 1,
			Name:      "Destornillador",
			UnitPrice: decimal.NewFromInt(3990),
		})

		require.NoError(t, err)
		require.Len(t, snap.Lines, 1)
		assert.Equal(t, int64(1), snap.Lines[0].Quantity)
	})
}
