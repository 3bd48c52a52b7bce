package cart

import (
	"github.com/gin-gonic/gin"

	"ferremas-storefront/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.SessionMiddleware())
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		carts.POST("/items", handler.AddLine)

		items := carts.Group("/items/:productId")
		{
			items.PATCH("", handler.UpdateQuantity)
			items.POST("/increment", handler.Increment)
			items.POST("/decrement", handler.Decrement)
			items.DELETE("", handler.RemoveLine)
		}
	}
}
