package enrollment

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches enrollment endpoints to the router.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, registrar gin.HandlerFunc) {
	router.POST("/courses/:courseId/enrollments", handler.Enroll)
	router.GET("/courses/:courseId/enrollments", handler.Roster)
	router.GET("/courses/:courseId/seats", handler.Seats)
	router.DELETE("/enrollments/:enrollmentId", registrar, handler.Drop)
}
