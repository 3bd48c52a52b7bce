package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ferremas-storefront/internal/backend"
	"ferremas-storefront/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("catalog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.handler")
	}
	return &Handler{service: svc, logger: l}
}

const defaultPageSize = 12

// List the catalog, paginated over the cached product list.
// GET /products?page=&page_size=
func (h *Handler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	products, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "could not load products", nil)
		return
	}

	start := (page - 1) * pageSize
	if start > len(products) {
		start = len(products)
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}

	pag := response.NewPaginationMeta(int64(len(products)), page, pageSize)
	response.Success(c, http.StatusOK, products[start:end], &pag)
}

// Detail of one product.
// GET /products/:id
func (h *Handler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}

	product, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		var backendErr *backend.Error
		if errors.As(err, &backendErr) && backendErr.StatusCode == http.StatusNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "product not found", nil)
			return
		}
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "could not load product", nil)
		return
	}
	response.Success(c, http.StatusOK, product, nil)
}
