package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/kdpatel43/enrollment-server-go/internal/features/course"
	"github.com/kdpatel43/enrollment-server-go/internal/features/enrollment"
	"github.com/kdpatel43/enrollment-server-go/internal/features/payment"
	"github.com/kdpatel43/enrollment-server-go/internal/features/student"
	"github.com/kdpatel43/enrollment-server-go/pkg/config"
	"github.com/kdpatel43/enrollment-server-go/pkg/health"
	"github.com/kdpatel43/enrollment-server-go/pkg/middleware"
)

// Register wires all feature routes onto the engine.
func Register(engine *gin.Engine, cfg *config.Config, db *gorm.DB, logger *slog.Logger, enrollmentService *enrollment.Service) {
	// Health check endpoints (no /api prefix for Kubernetes probes)
	healthHandler := health.NewHandler(db, logger)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/ready", healthHandler.Ready)
	engine.GET("/version", healthHandler.VersionInfo)

	// Metrics endpoint for Prometheus
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")

	registrar := middleware.RequireRegistrar(cfg.JWTSecret)

	studentHandler := student.NewHandler(db, logger)
	student.RegisterRoutes(api, studentHandler, registrar)

	courseHandler := course.NewHandler(db, logger, cfg.Enrollment.DefaultMinAge)
	course.RegisterRoutes(api, courseHandler, registrar)

	enrollmentHandler := enrollment.NewHandler(db, logger, enrollmentService)
	enrollment.RegisterRoutes(api, enrollmentHandler, registrar)

	paymentHandler := payment.NewHandler(db, logger)
	payment.RegisterRoutes(api, paymentHandler, registrar)
}
