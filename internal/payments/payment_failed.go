package payments

// Query-string codes the payment return flow can land with. The vocabulary is
// fixed by the backend; anything else falls through to the generic message.
const (
	CodeStockPostPagoFail        = "StockPostPagoFail"
	CodeTransaccionCancelada     = "TransaccionCanceladaPorUsuario"
	CodeTransaccionRechazada     = "TransaccionRechazada"
	CodeErrorInternoConfirmacion = "ErrorInternoConfirmacion"
)

// FailureNotice is the user-facing rendering of a failed-payment landing.
// ContactSupport marks the codes that are not client-recoverable: the user
// should reference the order id with support instead of retrying.
type FailureNotice struct {
	Code           string `json:"code"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	ContactSupport bool   `json:"contact_support"`
	OrderID        string `json:"order_id,omitempty"`
}

func DecodeFailure(code, orderID string) FailureNotice {
	n := FailureNotice{Code: code, OrderID: orderID}

	switch code {
	case CodeStockPostPagoFail:
		n.Title = "Pago recibido, stock no confirmado"
		n.Message = "Tu pago fue procesado, pero no pudimos confirmar el stock de tu pedido. Contacta a soporte indicando tu número de orden."
		n.ContactSupport = true
	case CodeTransaccionCancelada:
		n.Title = "Transacción cancelada"
		n.Message = "Cancelaste la transacción antes de completar el pago. Tu carrito sigue disponible para reintentar."
	case CodeTransaccionRechazada:
		n.Title = "Transacción rechazada"
		n.Message = "El medio de pago rechazó la transacción. Intenta nuevamente o usa otro medio de pago."
	case CodeErrorInternoConfirmacion:
		n.Title = "Error al confirmar el pago"
		n.Message = "Ocurrió un error interno al confirmar tu pago. Contacta a soporte indicando tu número de orden."
		n.ContactSupport = true
	default:
		n.Title = "El pago no pudo completarse"
		n.Message = "No fue posible completar el pago. Intenta nuevamente en unos minutos."
	}

	return n
}
