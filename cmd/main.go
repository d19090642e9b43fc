package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fit4ever/fit4ever-server/internal/api/http/apicontext"
	"github.com/fit4ever/fit4ever-server/internal/api/http/handler"
	"github.com/fit4ever/fit4ever-server/internal/api/http/middleware"
	"github.com/fit4ever/fit4ever-server/internal/api/http/router"
	httpserver "github.com/fit4ever/fit4ever-server/internal/api/http/server"
	"github.com/fit4ever/fit4ever-server/internal/config"
	"github.com/fit4ever/fit4ever-server/internal/logger"
	"github.com/fit4ever/fit4ever-server/internal/oauth"
	"github.com/fit4ever/fit4ever-server/internal/ratelimit"
	"github.com/fit4ever/fit4ever-server/internal/repository/postgres"
	"github.com/fit4ever/fit4ever-server/internal/service"
	storage "github.com/fit4ever/fit4ever-server/internal/storage/minio"
	"github.com/fit4ever/fit4ever-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	workoutRepo := postgres.NewWorkoutRepository(db)
	foodLogRepo := postgres.NewFoodLogRepository(db)
	goalRepo := postgres.NewGoalRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket, cfg.Storage.PublicURL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(userRepo, tokenManager, logger)
	userService := service.NewUser(userRepo, storageClient, logger)
	workoutService := service.NewWorkout(workoutRepo, logger)
	nutritionService := service.NewNutrition(foodLogRepo, logger)
	goalService := service.NewGoal(goalRepo, logger)

	googleProvider := oauth.NewGoogleProvider(
		cfg.OAuth.GoogleClientID,
		cfg.OAuth.GoogleClientSecret,
		cfg.OAuth.GoogleRedirectURL,
	)

	ctxMgr := apicontext.NewManager()
	limiter := ratelimit.New(cfg.RateLimit.Limit, cfg.RateLimit.Window)

	engine := router.New(
		router.Handlers{
			Auth:      handler.NewAuth(authService, logger),
			OAuth:     handler.NewOAuth(googleProvider, authService, logger),
			User:      handler.NewUser(userService, ctxMgr, logger),
			Workout:   handler.NewWorkout(workoutService, ctxMgr, logger),
			Nutrition: handler.NewNutrition(nutritionService, ctxMgr, logger),
			Goal:      handler.NewGoal(goalService, ctxMgr, logger),
		},
		router.Middleware{
			Logging:      middleware.NewLogging(logger),
			RateLimit:    middleware.NewRateLimit(limiter, logger),
			Authenticate: middleware.NewAuthenticate(tokenManager, userRepo, ctxMgr, logger),
		},
	)

	srv := httpserver.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", srv.Address())
		if err := srv.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
