package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/birthdaybliss/bliss-backend/internal/config"
	"github.com/birthdaybliss/bliss-backend/internal/handler"
	"github.com/birthdaybliss/bliss-backend/internal/middleware"
	"github.com/birthdaybliss/bliss-backend/internal/migration"
	"github.com/birthdaybliss/bliss-backend/internal/repository"
	"github.com/birthdaybliss/bliss-backend/internal/routes"
	"github.com/birthdaybliss/bliss-backend/internal/service"
	"github.com/birthdaybliss/bliss-backend/pkg/aiclient"
	pkgcache "github.com/birthdaybliss/bliss-backend/pkg/cache"
	pkglogger "github.com/birthdaybliss/bliss-backend/pkg/logger"
	pkgredis "github.com/birthdaybliss/bliss-backend/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Birthday Bliss API
// @version         1.0
// @description     Personalized birthday page backend - create a page, share the link, collect memories.
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")
	if err := migration.Run(db); err != nil {
		pkglogger.Info("Migration warning: %v", err)
	}

	// Redis
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Info("Warning: Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
		pkglogger.Info("Cache service initialized")
	}

	// Layout/TTS service client
	var aiClient *aiclient.Client
	if cfg.AI.Enabled && cfg.AI.BaseURL != "" {
		aiClient = aiclient.NewClient(cfg.AI.BaseURL, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		pkglogger.Info("AI service client initialized: %s", cfg.AI.BaseURL)
	}

	router := gin.Default()

	// CORS
	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "X-Cache"},
		MaxAge:           86400,
	}))

	// Middleware
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.InputSanitizer())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	rateLimited := redisClient != nil && !cfg.IsDevelopment()
	if rateLimited {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "bliss-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	birthdayRepo := repository.NewBirthdayRepository(db)
	memoryRepo := repository.NewMemoryRepository(db)

	birthdaySvc := service.NewBirthdayService(birthdayRepo, cacheService, cfg.Birthday)
	memorySvc := service.NewMemoryService(memoryRepo, birthdayRepo, cacheService)

	var arranger service.LayoutArranger
	var synthesizer service.SpeechSynthesizer
	if aiClient != nil {
		arranger = aiClient
		synthesizer = aiClient
	}
	pageSvc := service.NewPageService(birthdaySvc, memorySvc, arranger, cfg.Birthday, nil)
	ttsSvc := service.NewTTSService(birthdaySvc, synthesizer)

	routes.Setup(
		router,
		handler.NewBirthdayHandler(birthdaySvc),
		handler.NewMemoryHandler(memorySvc),
		handler.NewPageHandler(pageSvc, ttsSvc),
		redisClient,
		rateLimited,
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	pkglogger.Info("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func splitAndTrim(s string, delimiter string) []string {
	parts := []string{}
	for _, part := range strings.Split(s, delimiter) {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
