package course

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches course endpoints to the router.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, registrar gin.HandlerFunc) {
	courses := router.Group("/courses")

	courses.GET("", handler.List)
	courses.GET("/:courseId", handler.GetByID)
	courses.POST("", registrar, handler.Create)
	courses.PUT("/:courseId", registrar, handler.Update)
}
