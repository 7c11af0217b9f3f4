package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clothing_market/internal/config"
	"clothing_market/internal/handler"
	"clothing_market/internal/repository"
	"clothing_market/internal/scheduler"
	"clothing_market/internal/service"
	"clothing_market/internal/storage"
	"clothing_market/internal/utils/email"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	reportWindow  = 24 * time.Hour
	reportTimeout = time.Minute
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, warnings := config.LoadAppConfig()
	logger.SetLevel(cfg.LogLevel)
	for _, w := range warnings {
		logger.Warn(w)
	}
	gin.SetMode(cfg.GinMode)

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Fatalf("Failed to load DB config: %v", err)
	}

	// Ensure uploads directory exists
	if err := os.MkdirAll(cfg.UploadsDir, os.ModePerm); err != nil {
		logger.Fatalf("Failed to create uploads directory %s: %v", cfg.UploadsDir, err)
	}
	logger.Infof("Uploads will be stored in: %s", cfg.UploadsDir)

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(context.Background(), dbCfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(context.Background(), dbPool, logger); err != nil {
		logger.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	productRepo := repository.NewProductRepository(dbPool)
	postRepo := repository.NewPostRepository(dbPool)
	statsRepo := repository.NewStatsRepository(dbPool)

	// --- Initialize Services ---
	mediaStore := storage.NewLocalStore(cfg.UploadsDir, cfg.PublicBaseURL)

	var notifier service.Notifier = email.NewLogNotifier(logger)
	if cfg.MailEnabled() {
		notifier = email.NewSender(cfg, logger)
	} else {
		logger.Info("SMTP not configured, activity reports will be logged")
	}

	authService := service.NewAuthService(userRepo, cfg.BcryptCost, logger)
	productService := service.NewProductService(productRepo)
	postService := service.NewPostService(postRepo)
	mediaService := service.NewMediaService(mediaStore)
	reportService := service.NewReportService(statsRepo, notifier)

	// --- Scheduler ---
	sched := scheduler.New(logger)
	if err := sched.AddReportJob(cfg.ReportSchedule, reportService, reportWindow, reportTimeout); err != nil {
		logger.Fatalf("Failed to schedule activity report: %v", err)
	}
	sched.Start()

	// --- Setup Gin Router ---
	router := handler.NewRouter(logger, handler.Handlers{
		Auth:    handler.NewAuthHandler(authService, logger),
		Product: handler.NewProductHandler(productService, logger),
		Post:    handler.NewPostHandler(postService, logger),
		Media:   handler.NewMediaHandler(mediaService, logger),
	}, mediaStore.Dir(), dbPool)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	sched.Stop(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: ", err)
	}

	logger.Info("Server exiting")
}
