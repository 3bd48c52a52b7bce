package payments

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ferremas-storefront/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payments.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payments.handler")
	}
	return &Handler{service: svc, logger: l}
}

// Methods lists the payment methods the checkout screen offers.
// GET /payments/methods
func (h *Handler) Methods(c *gin.Context) {
	methods, err := h.service.Methods(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "could not load payment methods", nil)
		return
	}
	response.Success(c, http.StatusOK, methods, nil)
}

// Failure decodes the failed-payment landing codes into user-facing copy.
// GET /payments/failure?code=...&order_id=...
func (h *Handler) Failure(c *gin.Context) {
	code := c.Query("code")
	orderID := c.Query("order_id")

	notice := DecodeFailure(code, orderID)
	h.logger.Info("payment failure landing",
		zap.String("code", code),
		zap.String("order_id", orderID),
	)

	response.Success(c, http.StatusOK, notice, nil)
}
