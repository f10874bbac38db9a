package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.travelgallery/internal/config"
	"io.winapps.travelgallery/internal/db"
	"io.winapps.travelgallery/internal/gallery"
	"io.winapps.travelgallery/internal/handlers"
	"io.winapps.travelgallery/internal/logging"
	"io.winapps.travelgallery/internal/media"
	"io.winapps.travelgallery/internal/metrics"
	"io.winapps.travelgallery/internal/notify"
)

func main() {
	// Load configuration from the environment (and .env when present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Notifications always go to the log; Redis pub/sub is optional
	notifiers := notify.Multi{notify.NewLogNotifier(logger)}
	if cfg.RedisEnabled() {
		redisClient, err := db.InitRedis(cfg)
		if err != nil {
			logger.Fatalw("Failed to initialize Redis", "error", err)
		}
		defer redisClient.Close()
		notifiers = append(notifiers, notify.NewRedisNotifier(redisClient, cfg.NotifyChannel, logger))
	}

	// Media registry and the sweeper for abandoned uploads
	registry := media.NewRegistry(cfg.MediaMaxBytes)
	sweeper, err := media.NewSweeper(registry, cfg.MediaSweepSchedule, cfg.MediaPendingTTL, logger)
	if err != nil {
		logger.Fatalw("Failed to schedule media sweeper", "error", err)
	}
	sweeper.Start()

	// Gallery core
	var seed []gallery.Entry
	if cfg.SeedSampleEntries {
		seed = gallery.SampleEntries()
	}
	store := gallery.NewStore(registry, seed...)
	metrics.EntriesTotal.Set(float64(store.Len()))

	gate := gallery.NewGate(newVerifier(cfg, logger))

	router := handlers.NewRouter(
		handlers.NewGalleryHandler(store, gallery.NewFactory(), registry, notifiers, logger, cfg.MediaMaxBytes),
		handlers.NewAdminHandler(store, gate, notifiers, logger),
		gate,
		logger,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("Server starting", "addr", cfg.Addr(), "entries", store.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give a 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorw("Server forced to shutdown", "error", err)
	}

	sweeper.Stop()
	store.Close()

	logger.Info("Server exited")
}

func newVerifier(cfg *config.Config, logger *zap.SugaredLogger) gallery.Verifier {
	if cfg.AdminPasswordHash != "" {
		return gallery.BcryptVerifier{Username: cfg.AdminUsername, PasswordHash: []byte(cfg.AdminPasswordHash)}
	}
	logger.Warnw("Admin login uses a plain-text password; set ADMIN_PASSWORD_HASH to a bcrypt hash", "username", cfg.AdminUsername)
	return gallery.StaticVerifier{Username: cfg.AdminUsername, Password: cfg.AdminPassword}
}
