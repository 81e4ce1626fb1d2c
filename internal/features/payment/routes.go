package payment

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches payment endpoints to the router.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, registrar gin.HandlerFunc) {
	payments := router.Group("/payments")

	payments.GET("", registrar, handler.List)
	payments.GET("/:paymentId", registrar, handler.GetByID)
}
