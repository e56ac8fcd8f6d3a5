package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/quarmyne/otpauth/internal/pkg/config"
	"github.com/quarmyne/otpauth/internal/pkg/database"
	"github.com/quarmyne/otpauth/internal/pkg/health"
	"github.com/quarmyne/otpauth/internal/pkg/logger"
	"github.com/quarmyne/otpauth/internal/pkg/middleware"
	"github.com/quarmyne/otpauth/internal/pkg/otp"
	"github.com/quarmyne/otpauth/internal/pkg/server"
	"github.com/quarmyne/otpauth/services/auth/gateway"
	"github.com/quarmyne/otpauth/services/auth/handler"
	httpHandler "github.com/quarmyne/otpauth/services/auth/handler/http"
	"github.com/quarmyne/otpauth/services/auth/repository"
	"github.com/quarmyne/otpauth/services/auth/usecase"
)

func main() {
	appName := "otp-auth"
	configPath := config.GetEnv("CONFIG_PATH", "config/auth.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize repository and gateways
	otpRepo := repository.NewOTPRepo(configs, redisClient)
	smsGW := gateway.NewSMSGW(configs.SMS)
	accountGW := gateway.NewAccountGW(configs.Accounts)

	// Initialize usecase
	authUC := usecase.NewAuthUC(configs, otpRepo, smsGW, accountGW, otp.NewCodeGenerator())

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	h := handler.NewHandler(authHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecovery(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, redisClient)
	h.RegisterRoutes(e)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return zapLogger.Close()
	})

	// Start server and block until shutdown
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)
}
