// @title           WarRoom Board API
// @version         1.0
// @description     협업 칸반 보드 API (실시간 이벤트, 채팅, 활동 로그 포함)

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8003
// @BasePath  /api/boards

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "warroom-board-api/docs" // Swagger docs import

	"warroom-board-api/internal/config"
	"warroom-board-api/internal/database"
	"warroom-board-api/internal/job"
	"warroom-board-api/internal/metrics"
	"warroom-board-api/internal/repository"
	"warroom-board-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting WarRoom Board API",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database
	dbConfig := database.Config{
		DSN:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)
	logger.Info("Database connected successfully")

	if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	database.RegisterMetricsCallbacks(db, m)
	statsDone := database.StartDBStatsCollector(db, m)
	defer close(statsDone)

	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	collector.Start()
	defer collector.Stop()

	// Redis is optional; presence tracking degrades gracefully without it
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, presence tracking disabled", zap.Error(err))
	}

	// Schedule orphaned-record cleanup
	activityRepo := repository.NewActivityLogRepository(db)
	chatRepo := repository.NewChatMessageRepository(db)
	cleanupJob := job.NewCleanupJob(activityRepo, chatRepo, logger)

	scheduler := cron.New()
	if _, err := scheduler.AddJob(cfg.Cleanup.Schedule, cleanupJob); err != nil {
		logger.Warn("Failed to schedule cleanup job", zap.Error(err))
	} else {
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info("Cleanup job scheduled", zap.String("schedule", cfg.Cleanup.Schedule))
	}

	// Setup router with all dependencies
	r := router.Setup(&router.Config{
		DB:             db,
		Redis:          database.GetRedis(),
		Logger:         logger,
		JWTSecret:      cfg.JWT.Secret,
		BasePath:       cfg.Server.BasePath,
		Env:            cfg.Server.Env,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Metrics:        m,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("WarRoom Board API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
