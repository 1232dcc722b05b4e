package config

import (
	"fmt"

	"hotel-reservation-api/middleware"
	"hotel-reservation-api/services"
	"hotel-reservation-api/services/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App holds everything main needs to serve and shut down
type App struct {
	Router  *gin.Engine
	Melody  *melody.Melody
	Cron    *cron.Cron
	DB      *gorm.DB
	Redis   *redis.Client
	Logger  *logger.ZapLogger
	Limiter middleware.Limiter
}

func InitApp(cfg *Config) (*App, error) {
	log, err := logger.NewZapLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(corsConfig(cfg)))
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	db, err := ConnectDB(cfg.DB, log.With("component", "database"), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	app := &App{
		Router: router,
		Melody: melody.New(),
		Cron:   cron.New(),
		DB:     db,
		Redis:  ConnectRedis(cfg.Redis, log.With("component", "redis")),
		Logger: log,
	}

	if app.Redis != nil && cfg.RateLimit.Enabled {
		app.Limiter = services.NewRateLimiter(app.Redis, services.RateLimitConfig{
			Prefix:         "hotel:ratelimit",
			Capacity:       cfg.RateLimit.Capacity,
			RefillTokens:   cfg.RateLimit.RefillTokens,
			RefillInterval: cfg.RateLimit.RefillInterval,
			TTL:            cfg.RateLimit.TTL,
		})
	}

	log.Info("all components initialized")
	return app, nil
}

func corsConfig(cfg *Config) cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders(middleware.RequestIDHeader)
	configCors.AddExposeHeaders(middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After")

	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		configCors.AllowOrigins = origins
	} else {
		configCors.AllowAllOrigins = true
	}
	return configCors
}
