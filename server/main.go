package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptofolio/api/routes"
	"cryptofolio/internal/alerts"
	"cryptofolio/internal/notifications"
	"cryptofolio/internal/shared/config"
	"cryptofolio/internal/shared/database"
	"cryptofolio/pkg/logger"
	"cryptofolio/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		appLogger.Error("Invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize DB
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect:", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiterConfig := &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			PublicRequests:  cfg.RateLimit.PublicRequests,
			AuthRequests:    cfg.RateLimit.AuthRequests,
			TradingRequests: cfg.RateLimit.TradingRequests,
			AdminRequests:   cfg.RateLimit.AdminRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		}

		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), rateLimiterConfig)
		appLogger.Info("Rate limiter initialized",
			slog.Bool("enabled", cfg.RateLimit.Enabled),
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Notification pipeline: Kafka producer/consumer when configured,
	// synchronous email delivery otherwise
	emailSender := notifications.NewSMTPSender(cfg.Email)
	var notifier alerts.Notifier

	notificationCtx, notificationCancel := context.WithCancel(context.Background())
	defer notificationCancel()

	if cfg.Kafka.Enabled {
		producer, err := notifications.NewKafkaProducer(
			notifications.DefaultProducerConfig(cfg.Kafka.Brokers, cfg.Kafka.AlertTopic))
		if err != nil {
			appLogger.Error("Failed to initialize Kafka producer", slog.Any("error", err))
			appLogger.Info("Falling back to direct email notifications")
			notifier = notifications.NewDirectNotifier(emailSender)
		} else {
			defer producer.Close()
			notifier = notifications.NewAlertNotifierAdapter(producer)

			consumer, err := notifications.NewKafkaConsumer(
				notifications.DefaultConsumerConfig(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.AlertTopic),
				emailSender)
			if err != nil {
				appLogger.Error("Failed to initialize Kafka consumer", slog.Any("error", err))
			} else {
				if err := consumer.Start(notificationCtx); err != nil {
					appLogger.Error("Failed to start Kafka consumer", slog.Any("error", err))
				}
				defer consumer.Stop()
			}

			appLogger.Info("Kafka notification pipeline started",
				slog.String("topic", cfg.Kafka.AlertTopic))
		}
	} else {
		notifier = notifications.NewDirectNotifier(emailSender)
		appLogger.Info("Kafka disabled, alert notifications delivered synchronously")
	}

	// Setup router with rate limiter
	appRouter := routes.NewRouter(cfg, db, notifier)
	engine := setupEngine(cfg, rateLimiter)
	appRouter.SetupRoutes(engine)

	// Background alert evaluation
	jobProcessor := alerts.NewJobProcessor(appRouter.AlertService(), &alerts.JobConfig{
		EvaluationInterval: cfg.Alerts.EvaluationInterval,
		BatchSize:          cfg.Alerts.BatchSize,
	})
	jobProcessor.Start(notificationCtx)
	defer jobProcessor.Stop()

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        engine,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_status", fmt.Sprintf("http://localhost:%s%s/status", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", cfg.APIVersion),
			slog.Bool("kafka", cfg.Kafka.Enabled),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupEngine(cfg *config.Config, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
