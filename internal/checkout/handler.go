package checkout

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ferremas-storefront/internal/backend"
	"ferremas-storefront/internal/pkg/apperror"
	"ferremas-storefront/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("checkout.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("checkout.handler")
	}
	return &Handler{service: svc, logger: l}
}

func authFromContext(c *gin.Context) backend.Auth {
	return backend.Auth{
		Bearer:    c.GetString("bearer_token"),
		CSRFToken: c.GetString("csrf_token"),
	}
}

// Submit converts the session's cart into a backend order.
// POST /checkout
func (h *Handler) Submit(c *gin.Context) {
	session := c.GetString("session_key")

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("malformed checkout request", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", err.Error())
		return
	}

	res, err := h.service.Submit(c.Request.Context(), session, authFromContext(c), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	status := http.StatusOK
	if res.Status == StatusOrderCreated {
		status = http.StatusCreated
	}
	response.Success(c, status, res, nil)
}

// PaymentRedirect serves the auto-POST page for a redirect-style payment.
// GET /checkout/payment-redirect?url=...&token=...
func (h *Handler) PaymentRedirect(c *gin.Context) {
	redirectURL := c.Query("url")
	token := c.Query("token")
	if redirectURL == "" || token == "" {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "url and token are required", nil)
		return
	}

	var buf bytes.Buffer
	if err := renderRedirectForm(&buf, redirectURL, token); err != nil {
		h.logger.Warn("refused payment redirect", zap.String("url", redirectURL), zap.Error(err))
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid redirect url", nil)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
