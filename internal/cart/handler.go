package cart

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	carterrors "ferremas-storefront/internal/cart/errors"
	"ferremas-storefront/internal/pkg/apperror"
	"ferremas-storefront/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{service: s, logger: l}
}

func sessionFromContext(c *gin.Context) string {
	return c.GetString("session_key")
}

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || id <= 0 {
		httpErr := apperror.ToHTTP(carterrors.ErrInvalidProduct)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) Detail(c *gin.Context) {
	snap := h.service.Detail(c.Request.Context(), sessionFromContext(c))
	response.Success(c, http.StatusOK, snap, nil)
}

func (h *Handler) Count(c *gin.Context) {
	count := h.service.Count(c.Request.Context(), sessionFromContext(c))
	response.Success(c, http.StatusOK, CountResponse{Count: count}, nil)
}

func (h *Handler) AddLine(c *gin.Context) {
	var req AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("malformed add-line request", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", err.Error())
		return
	}

	snap, err := h.service.AddLine(c.Request.Context(), sessionFromContext(c), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, snap, nil)
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", err.Error())
		return
	}

	snap := h.service.UpdateQuantity(c.Request.Context(), sessionFromContext(c), id, req)
	response.Success(c, http.StatusOK, snap, nil)
}

func (h *Handler) Increment(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	snap, err := h.service.Increment(c.Request.Context(), sessionFromContext(c), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, snap, nil)
}

func (h *Handler) Decrement(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	snap, err := h.service.Decrement(c.Request.Context(), sessionFromContext(c), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, snap, nil)
}

func (h *Handler) RemoveLine(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	snap := h.service.RemoveLine(c.Request.Context(), sessionFromContext(c), id)
	response.Success(c, http.StatusOK, snap, nil)
}

func (h *Handler) Clear(c *gin.Context) {
	h.service.Clear(c.Request.Context(), sessionFromContext(c))
	response.Success(c, http.StatusOK, nil, nil)
}
