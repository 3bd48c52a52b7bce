package checkout

import (
	"github.com/gin-gonic/gin"

	"ferremas-storefront/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	co := r.Group("/checkout")
	co.Use(middleware.SessionMiddleware())
	{
		co.POST("", handler.Submit)
		co.GET("/payment-redirect", handler.PaymentRedirect)
	}

	// Sellers place orders from the in-store screen against their own
	// session cart; same flow, staff-gated.
	seller := r.Group("/seller/checkout")
	seller.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(middleware.RoleSeller, middleware.RoleAdmin))
	{
		seller.POST("", handler.Submit)
	}
}
