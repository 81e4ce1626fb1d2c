package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kdpatel43/enrollment-server-go/internal/features/enrollment"
	"github.com/kdpatel43/enrollment-server-go/internal/features/payment"
	"github.com/kdpatel43/enrollment-server-go/internal/http/routes"
	"github.com/kdpatel43/enrollment-server-go/pkg/cache"
	"github.com/kdpatel43/enrollment-server-go/pkg/config"
	"github.com/kdpatel43/enrollment-server-go/pkg/database"
	"github.com/kdpatel43/enrollment-server-go/pkg/email"
	"github.com/kdpatel43/enrollment-server-go/pkg/jobs"
	"github.com/kdpatel43/enrollment-server-go/pkg/logger"
	"github.com/kdpatel43/enrollment-server-go/pkg/metrics"
	"github.com/kdpatel43/enrollment-server-go/pkg/middleware"
	"github.com/kdpatel43/enrollment-server-go/pkg/types"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(ctx, cfg.Database, appLogger)
	if err != nil {
		appLogger.Error("database connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := database.Close(db, appLogger); err != nil {
			appLogger.Error("database close failed", slog.String("error", err.Error()))
		}
	}()

	cacheClient, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		appLogger.Error("redis connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cacheClient.Close()

	emailClient := email.NewClient(
		cfg.Email.Host,
		cfg.Email.Port,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.Secure,
	)

	decider := payment.NewRateDecider(cfg.Payment.ApprovalRate)

	enrollmentService := enrollment.NewService(
		db,
		cacheClient,
		appLogger,
		decider,
		emailClient,
		types.Currency(cfg.Payment.Currency),
	)

	scheduler := jobs.NewScheduler(appLogger)
	scheduler.AddJob(
		enrollment.NewPromotionJob(enrollmentService, appLogger),
		time.Duration(cfg.Enrollment.PromotionInterval)*time.Second,
	)
	scheduler.Start()
	defer scheduler.Stop()

	router := gin.New()

	router.Use(middleware.Recovery(appLogger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(metrics.Middleware())

	// Rate limiting (100 requests per minute per IP)
	rateLimiter := middleware.NewRateLimiter(100, time.Minute)
	router.Use(rateLimiter.Middleware())

	routes.Register(router, cfg, db, appLogger, enrollmentService)

	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	go func() {
		appLogger.Info("server starting",
			slog.String("addr", cfg.ServerAddress()),
			slog.String("env", cfg.Env),
			slog.String("log_level", cfg.LogLevel),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("server listen failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	appLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appLogger.Info("server stopped")
}
