// @title           Fair API
// @version         1.0
// @description     Booth check-in, learning records and live crowd status for fair events
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token from /auth/qr.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	_ "fair-api/docs" // Swagger docs import

	"fair-api/internal/config"
	"fair-api/internal/database"
	"fair-api/internal/domain"
	"fair-api/internal/job"
	"fair-api/internal/metrics"
	"fair-api/internal/realtime"
	"fair-api/internal/repository"
	"fair-api/internal/router"
	"fair-api/internal/service"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Fair API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("dev_fallback", cfg.Auth.DevFallbackEnabled),
	)
	if cfg.Auth.DevFallbackEnabled {
		logger.Warn("Dev fallback identity is enabled; unauthenticated requests act as ADMIN")
	}
	if len(cfg.Auth.EntryQRTokens) == 0 {
		logger.Info("No entry QR tokens configured, only booth QR codes can sign in")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(logger)

	db, err := connectDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Database unavailable", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	keywordService := service.NewKeywordService(repository.NewKeywordRepository(db), logger)
	if err := keywordService.SeedDefaults(ctx); err != nil {
		logger.Warn("Failed to seed default keywords", zap.Error(err))
	}

	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	dbStatsStop := database.StartDBStatsCollector(db, m, 15*time.Second)
	defer close(dbStatsStop)

	businessCollector := metrics.NewBusinessMetricsCollector(repository.NewTotals(db), m, logger, time.Minute)
	businessCollector.Start()
	defer businessCollector.Stop()

	// Redis is optional; without it broadcasts stay on this replica
	rdb, err := database.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to local crowd broadcasts", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	hub := realtime.NewHub(m, logger)
	go hub.Run()

	var publisher realtime.Publisher = realtime.NewLocalPublisher(hub)
	if rdb != nil {
		relay := realtime.NewRedisRelay(rdb, hub, m, logger)
		if err := relay.Start(ctx); err != nil {
			logger.Warn("Failed to subscribe to crowd relay, broadcasting locally", zap.Error(err))
		} else {
			defer relay.Stop()
			publisher = relay
		}
	}

	// Crowd broadcaster
	boothRepo := repository.NewBoothRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	thresholds := domain.CrowdThresholds{Medium: cfg.Crowd.MediumThreshold, High: cfg.Crowd.HighThreshold}
	crowdService := service.NewCrowdStatusService(boothRepo, checkInRepo, thresholds, cfg.Crowd.Window())
	broadcastJob := job.NewCrowdBroadcastJob(
		crowdService,
		repository.NewCrowdSnapshotRepository(db),
		publisher,
		m,
		logger,
		cfg.Crowd.BroadcastInterval(),
	)

	scheduler := job.NewScheduler(logger)
	if err := scheduler.Every(cfg.Crowd.BroadcastInterval(), "crowd-broadcast", broadcastJob); err != nil {
		logger.Fatal("Failed to schedule crowd broadcast", zap.Error(err))
	}
	scheduler.Start()

	routerStop := make(chan struct{})
	r := router.Setup(router.Config{
		DB:             db,
		Redis:          rdb,
		Logger:         logger,
		Metrics:        m,
		Hub:            hub,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.CORS.Origins(),
		Auth:           cfg.Auth,
		Crowd:          cfg.Crowd,
		RateLimit:      cfg.RateLimit,
		Stop:           routerStop,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Fair API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop producing frames before closing the hub they are delivered to
	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Warn("Crowd broadcaster did not stop in time", zap.Error(err))
	}
	close(routerStop)
	hub.Close()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

// connectDatabase tries once, then keeps retrying in the background until
// the connection is up or the process is asked to stop.
func connectDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dbConfig := database.ConfigFrom(cfg.Database)

	db, err := database.New(dbConfig)
	if err == nil {
		database.SetDB(db)
		logger.Info("Database connected successfully")
		return db, nil
	}
	logger.Warn("Failed to connect to database on startup, will retry in background", zap.Error(err))

	connected := make(chan *gorm.DB, 1)
	database.ConnectAsync(ctx, dbConfig, 5*time.Second, logger, func(db *gorm.DB) {
		connected <- db
	})

	select {
	case db := <-connected:
		return db, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
