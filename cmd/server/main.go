package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/fadilmartias/job-tracker/internal/domain/fiber/handler"
	"github.com/fadilmartias/job-tracker/internal/logger"
	"github.com/fadilmartias/job-tracker/internal/middleware"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/service"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	zl, err := logger.New(appConfig.LogJSON, appConfig.LogDebug)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	storageConfig := config.LoadStorageConfig()
	oracleConfig := config.LoadOracleConfig()

	var db *gorm.DB
	if storageConfig.Driver == config.StoragePostgres || config.LoadDBConfig().Configured() {
		db = ConnectDB(zl)
	}

	var rdb *redis.Client
	if storageConfig.Driver == config.StorageRedis {
		rdb, err = repository.NewRedisClient(ctx, config.LoadRedisConfig().URL)
		if err != nil {
			zl.Fatal("could not connect to redis", zap.Error(err))
		}
		defer rdb.Close()
	}

	store, err := repository.NewListStore(storageConfig.Driver, db, rdb)
	if err != nil {
		zl.Fatal("could not build list store", zap.Error(err))
	}
	zl.Info("storage ready", zap.String("driver", storageConfig.Driver))

	jobRepo := repository.NewJobRepository(db, repository.DefaultJobs(time.Now()))
	if err := jobRepo.SeedJobs(ctx); err != nil {
		zl.Fatal("could not seed jobs", zap.Error(err))
	}
	applicationRepo := repository.NewApplicationRepository(store, storageConfig.ApplicationsKey, zl)

	oracle := service.NewScoringOracle(NewGenerator(ctx, oracleConfig.Provider, zl), zl, oracleConfig.MaxLogLength)

	matchUC := usecase.NewMatchUsecase(oracle, oracleConfig.MatchTimeout, oracleConfig.MatchConcurrency, zl)
	trackerUC := usecase.NewTrackerUsecase(applicationRepo, zl)
	chatUC := usecase.NewChatUsecase(oracle, jobRepo, oracleConfig.ChatTimeout, zl)
	resumeUC := usecase.NewResumeUsecase(nil, zl)

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 6 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter("global", 300, 1*time.Minute))

	handler.NewJobHandler(jobRepo).RegisterRoutes(app)
	handler.NewMatchHandler(matchUC, jobRepo).RegisterRoutes(app)
	handler.NewResumeHandler(resumeUC, zl).RegisterRoutes(app)
	handler.NewTrackerHandler(trackerUC).RegisterRoutes(app)
	handler.NewChatHandler(chatUC).RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			zl.Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
		}
	}()

	zl.Info("server running", zap.String("port", appConfig.Port), zap.String("env", appConfig.Env))
	if err := app.Listen(appConfig.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

// NewGenerator picks the oracle backend. A provider that cannot be configured
// degrades to an always-failing generator so every call uses its fallback.
func NewGenerator(ctx context.Context, provider string, zl *zap.Logger) service.Generator {
	switch provider {
	case config.OracleOpenRouter:
		svc, err := service.NewOpenRouterService(config.LoadOpenRouterConfig())
		if err != nil {
			zl.Warn("openrouter oracle unavailable", zap.Error(err))
			return service.UnavailableGenerator{Reason: err.Error()}
		}
		return svc
	case config.OracleGemini:
		svc, err := service.NewGeminiService(ctx, config.LoadGeminiConfig(), zl)
		if err != nil {
			zl.Warn("gemini oracle unavailable", zap.Error(err))
			return service.UnavailableGenerator{Reason: err.Error()}
		}
		return svc
	}
	zl.Warn("unknown oracle provider", zap.String("provider", provider))
	return service.UnavailableGenerator{Reason: "unknown provider " + provider}
}

func ConnectDB(zl *zap.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		zl.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		zl.Fatal("could not get database instance", zap.Error(err))
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(100)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.Job{}, &model.ListEntry{}); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}
	return db
}
