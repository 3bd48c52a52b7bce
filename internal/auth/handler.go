package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ferremas-storefront/internal/cart"
	"ferremas-storefront/internal/pkg/response"
)

// Token issuance lives in the backend; this handler only manages the
// storefront side of a session, in particular the cart tied to it.
type Handler struct {
	cartSvc cart.Service
	logger  *zap.Logger
}

func NewHandler(cartSvc cart.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{cartSvc: cartSvc, logger: l}
}

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
	Role          string `json:"role,omitempty"`
}

// Session reports who the caller is, for the UI's role-gated navigation.
// GET /auth/session
func (h *Handler) Session(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	response.Success(c, http.StatusOK, SessionResponse{
		Authenticated: userID != "",
		UserID:        userID,
		Role:          c.GetString("role"),
	}, nil)
}

// Logout destroys the session's cart before expiring the cookies, so a later
// login on the same browser starts from an empty cart.
// POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	session := c.GetString("session_key")
	h.cartSvc.Destroy(c.Request.Context(), session)

	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.SetCookie("cart_session", "", -1, "/", "", false, true)

	h.logger.Info("session logged out", zap.String("session", session))
	response.Success(c, http.StatusOK, nil, nil)
}
