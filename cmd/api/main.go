package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/drivesense/drivesense-backend/internal/pkg/config"
	"github.com/drivesense/drivesense-backend/internal/pkg/database"
	"github.com/drivesense/drivesense-backend/internal/pkg/docstore"
	"github.com/drivesense/drivesense-backend/internal/pkg/health"
	"github.com/drivesense/drivesense-backend/internal/pkg/logger"
	"github.com/drivesense/drivesense-backend/internal/pkg/middleware"
	"github.com/drivesense/drivesense-backend/internal/pkg/nsq"
	"github.com/drivesense/drivesense-backend/internal/pkg/server"
	driversvc "github.com/drivesense/drivesense-backend/services/driver"
	drivergw "github.com/drivesense/drivesense-backend/services/driver/gateway"
	driverhandler "github.com/drivesense/drivesense-backend/services/driver/handler"
	driverhttp "github.com/drivesense/drivesense-backend/services/driver/handler/http"
	driverrepo "github.com/drivesense/drivesense-backend/services/driver/repository"
	driveruc "github.com/drivesense/drivesense-backend/services/driver/usecase"
	userhandler "github.com/drivesense/drivesense-backend/services/user/handler"
	userhttp "github.com/drivesense/drivesense-backend/services/user/handler/http"
	userrepo "github.com/drivesense/drivesense-backend/services/user/repository"
	useruc "github.com/drivesense/drivesense-backend/services/user/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	zapLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// MongoDB
	mongoClient, err := database.NewMongoClient(cfg.Mongo)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", logger.Err(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return mongoClient.Close()
	})
	store := docstore.NewMongoStore(mongoClient.Database())

	// Redis, used only by the rate limiter; optional
	var redisClient *database.RedisClient
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			return redisClient.Close()
		})
	}

	// NSQ alert publishing; optional
	var alertGW driversvc.AlertGW
	if cfg.NSQ.Enabled {
		producer, err := nsq.NewProducer(cfg.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
		alertGW = drivergw.NewAlertGateway(producer, cfg.NSQ.AlertTopic)
	}

	// Repositories and usecases
	userRepo := userrepo.NewUserRepo(store)
	userUC := useruc.NewUserUC(userRepo, cfg)

	driverRepo := driverrepo.NewDriverRepo(store)
	eventRepo := driverrepo.NewEventRepo(store)
	driverUC := driveruc.NewDriverUC(driverRepo, eventRepo, alertGW, cfg)

	// HTTP layer
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, cfg.App.Name)

	var authLimiter echo.MiddlewareFunc
	if redisClient != nil {
		authLimiter = middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Key:         "ratelimit:auth",
			Limit:       cfg.RateLimit.Limit,
			Period:      time.Duration(cfg.RateLimit.PeriodSeconds) * time.Second,
		})
	}

	userhandler.NewHandler(
		userhttp.NewUserHandler(userUC),
		userhttp.NewAuthHandler(userUC),
		cfg,
	).RegisterRoutes(e, authLimiter)

	driverhandler.NewHandler(
		driverhttp.NewDriverHandler(driverUC),
		driverhttp.NewEventHandler(driverUC),
		cfg,
	).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Error during shutdown", logger.Err(err))
	}
}
