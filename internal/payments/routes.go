package payments

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	p := r.Group("/payments")
	{
		p.GET("/methods", handler.Methods)
		p.GET("/failure", handler.Failure)
	}
}
