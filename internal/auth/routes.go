package auth

import (
	"github.com/gin-gonic/gin"

	"ferremas-storefront/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	a := r.Group("/auth")
	a.Use(middleware.SessionMiddleware())
	{
		a.GET("/session", handler.Session)
		a.POST("/logout", handler.Logout)
	}
}
