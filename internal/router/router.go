package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fair-api/internal/config"
	"fair-api/internal/domain"
	"fair-api/internal/handler"
	"fair-api/internal/metrics"
	"fair-api/internal/middleware"
	"fair-api/internal/realtime"
	"fair-api/internal/repository"
	"fair-api/internal/service"
)

// Config holds router dependencies
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Hub            *realtime.Hub
	BasePath       string
	AllowedOrigins []string
	Auth           config.AuthConfig
	Crowd          config.CrowdConfig
	RateLimit      config.RateLimitConfig
	// Gatherer backs /metrics. Defaults to the global prometheus registry.
	Gatherer prometheus.Gatherer
	// Stop ends the rate limiter's idle-visitor sweep. Nil disables the sweep.
	Stop <-chan struct{}
}

// Setup creates and configures the Gin router
func Setup(cfg Config) *gin.Engine {
	handler.RegisterJSONFieldNames()

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Repositories
	participantRepo := repository.NewParticipantRepository(cfg.DB)
	boothRepo := repository.NewBoothRepository(cfg.DB)
	checkInRepo := repository.NewCheckInRepository(cfg.DB)
	keywordRepo := repository.NewKeywordRepository(cfg.DB)
	recordRepo := repository.NewLearningRecordRepository(cfg.DB)
	resonanceRepo := repository.NewResonanceRepository(cfg.DB)

	// Services
	thresholds := domain.CrowdThresholds{Medium: cfg.Crowd.MediumThreshold, High: cfg.Crowd.HighThreshold}
	crowdService := service.NewCrowdStatusService(boothRepo, checkInRepo, thresholds, cfg.Crowd.Window())
	authService := service.NewAuthService(participantRepo, boothRepo, cfg.Auth.EntryQRTokens, cfg.Metrics, cfg.Logger)
	boothService := service.NewBoothService(boothRepo, keywordRepo, crowdService, cfg.Logger)
	checkInService := service.NewCheckInService(checkInRepo, boothRepo, cfg.Metrics, cfg.Logger)
	keywordService := service.NewKeywordService(keywordRepo, cfg.Logger)
	recordService := service.NewLearningRecordService(recordRepo, boothRepo, keywordRepo, resonanceRepo, cfg.Metrics, cfg.Logger)
	resonanceService := service.NewResonanceService(resonanceRepo, recordRepo, cfg.Metrics, cfg.Logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	boothHandler := handler.NewBoothHandler(boothService, recordService)
	checkInHandler := handler.NewCheckInHandler(checkInService)
	keywordHandler := handler.NewKeywordHandler(keywordService)
	recordHandler := handler.NewLearningRecordHandler(recordService)
	resonanceHandler := handler.NewResonanceHandler(resonanceService)
	crowdHandler := handler.NewCrowdStatusHandler(crowdService, cfg.Hub, cfg.AllowedOrigins, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.Redis)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// Infrastructure endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.Metrics, cfg.Logger)
		if cfg.Stop != nil {
			limiter.StartCleanup(time.Minute, 10*time.Minute, cfg.Stop)
		}
		limit = limiter.Handler()
	}

	api := r.Group(cfg.BasePath)
	api.Use(middleware.SessionAuth(authService, cfg.Auth.DevFallbackEnabled, cfg.Logger))
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		// Public
		api.POST("/auth/qr", limit, authHandler.AuthenticateQR)
		api.GET("/booths", boothHandler.ListBooths)
		api.GET("/booths/:id", boothHandler.GetBooth)
		api.GET("/keywords", keywordHandler.ListKeywords)
		api.GET("/crowd-status", crowdHandler.GetCrowdStatus)
		api.GET("/ws/crowd-status", crowdHandler.Subscribe)

		// Any resolved identity
		authenticated := api.Group("")
		authenticated.Use(middleware.RequireAuth())
		{
			authenticated.POST("/auth/onboarding-complete", authHandler.CompleteOnboarding)
			authenticated.GET("/auth/me", authHandler.Me)

			authenticated.PUT("/booths/:id", boothHandler.UpdateBooth)
			authenticated.GET("/booths/:id/learning-records", boothHandler.ListBoothRecords)

			authenticated.POST("/checkins/qr", limit, checkInHandler.CheckInByQR)
			authenticated.POST("/checkins/code", limit, checkInHandler.CheckInByCode)
			authenticated.GET("/checkins/my", checkInHandler.GetMyCheckIns)

			// static route must come before the :id routes
			authenticated.GET("/learning-records/my", recordHandler.ListMyRecords)
			authenticated.POST("/learning-records", recordHandler.CreateRecord)
			authenticated.GET("/learning-records/:id", recordHandler.GetRecord)
			authenticated.PUT("/learning-records/:id", recordHandler.UpdateRecord)
			authenticated.DELETE("/learning-records/:id", recordHandler.DeleteRecord)

			authenticated.POST("/resonances", resonanceHandler.ToggleResonance)
		}

		operators := api.Group("")
		operators.Use(middleware.RequireRole(domain.RoleBoothOperator))
		{
			operators.POST("/booths", boothHandler.CreateBooth)
		}

		admins := api.Group("")
		admins.Use(middleware.RequireRole(domain.RoleAdmin))
		{
			admins.POST("/keywords", keywordHandler.CreateKeyword)
			admins.PUT("/keywords/:id", keywordHandler.UpdateKeyword)
			admins.DELETE("/keywords/:id", keywordHandler.DeleteKeyword)
		}
	}

	return r
}
