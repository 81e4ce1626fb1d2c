package student

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches student endpoints to the router.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, registrar gin.HandlerFunc) {
	students := router.Group("/students")

	students.GET("", handler.List)
	students.GET("/:studentId", handler.GetByID)
	students.POST("", registrar, handler.Create)
}
