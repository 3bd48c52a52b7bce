package payments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ferremas-storefront/internal/payments"
)

func TestDecodeFailure(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		contactSupport bool
	}{
		{"stock_post_pago", payments.CodeStockPostPagoFail, true},
		{"cancelada_por_usuario", payments.CodeTransaccionCancelada, false},
		{"rechazada", payments.CodeTransaccionRechazada, false},
		{"error_interno", payments.CodeErrorInternoConfirmacion, true},
		{"unknown_code", "AlgoNuevo", false},
		{"empty_code", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notice := payments.DecodeFailure(tt.code, "42")

			assert.Equal(t, tt.code, notice.Code)
			assert.Equal(t, "42", notice.OrderID)
			assert.Equal(t, tt.contactSupport, notice.ContactSupport)
			assert.NotEmpty(t, notice.Title)
			assert.NotEmpty(t, notice.Message)
		})
	}
}

func TestDecodeFailure_DistinctMessages(t *testing.T) {
	codes := []string{
		payments.CodeStockPostPagoFail,
		payments.CodeTransaccionCancelada,
		payments.CodeTransaccionRechazada,
		payments.CodeErrorInternoConfirmacion,
		"unrecognized",
	}

	seen := map[string]string{}
	for _, code := range codes {
		notice := payments.DecodeFailure(code, "")
		prev, dup := seen[notice.Message]
		assert.False(t, dup, "codes %q and %q share a message", prev, code)
		seen[notice.Message] = code
	}
}

func TestDecodeFailure_OmitsEmptyOrderID(t *testing.T) {
	notice := payments.DecodeFailure(payments.CodeTransaccionRechazada, "")
	assert.Empty(t, notice.OrderID)
}
