package locations

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ferremas-storefront/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("locations.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("locations.handler")
	}
	return &Handler{service: svc, logger: l}
}

// Regions
// GET /locations/regions
func (h *Handler) Regions(c *gin.Context) {
	regions, err := h.service.Regions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "could not load regions", nil)
		return
	}
	response.Success(c, http.StatusOK, regions, nil)
}

// Communes filtered by region.
// GET /locations/regions/:regionId/communes
func (h *Handler) Communes(c *gin.Context) {
	regionID, err := strconv.ParseInt(c.Param("regionId"), 10, 64)
	if err != nil || regionID <= 0 {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "invalid region id", nil)
		return
	}

	communes, err := h.service.Communes(c.Request.Context(), regionID)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "could not load communes", nil)
		return
	}
	response.Success(c, http.StatusOK, communes, nil)
}

// Branches available as pickup destinations.
// GET /locations/branches
func (h *Handler) Branches(c *gin.Context) {
	branches, err := h.service.Branches(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "could not load branches", nil)
		return
	}
	response.Success(c, http.StatusOK, branches, nil)
}
