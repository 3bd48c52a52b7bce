package locations

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	loc := r.Group("/locations")
	{
		loc.GET("/regions", handler.Regions)
		loc.GET("/regions/:regionId/communes", handler.Communes)
		loc.GET("/branches", handler.Branches)
	}
}
