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
	"gorm.io/gorm"

	"github.com/helios-ride/service-routing/internal/application"
	"github.com/helios-ride/service-routing/internal/config"
	"github.com/helios-ride/service-routing/internal/domain/risk"
	routeEvents "github.com/helios-ride/service-routing/internal/events"
	"github.com/helios-ride/service-routing/internal/handler"
	"github.com/helios-ride/service-routing/internal/platform/database"
	"github.com/helios-ride/service-routing/internal/platform/kafka"
	"github.com/helios-ride/service-routing/internal/platform/logger"
	"github.com/helios-ride/service-routing/internal/platform/metrics"
	"github.com/helios-ride/service-routing/internal/platform/middleware"
	"github.com/helios-ride/service-routing/internal/provider/googlemaps"
	"github.com/helios-ride/service-routing/internal/repository"
)

const serviceName = "service-routing"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-routing",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	// Connect to the medical record store, if configured
	db := connectRecordStore(cfg, log)

	// Initialize Kafka producer
	var publisher application.RouteEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaProducer := kafka.NewProducer(cfg.KafkaBrokers, log)
		defer func() { _ = kafkaProducer.Close() }()
		publisher = routeEvents.NewRoutePublisher(kafkaProducer, log)
	} else {
		log.Info("no kafka brokers configured, route events disabled")
	}

	// Initialize metrics
	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	// Initialize mapping provider
	mapsClient, err := googlemaps.NewClient(cfg.Maps, log)
	if err != nil {
		log.Fatal("failed to create maps client", zap.Error(err))
	}

	// Initialize application services
	routeService := application.NewRouteService(mapsClient, risk.NewScorer(), publisher, collector, log)
	placeService := application.NewPlaceService(mapsClient, collector, log)
	medicalService := application.NewMedicalService(repository.NewGormMedicalRecordRepository(db), log)

	// Initialize HTTP handlers
	healthHandler := handler.NewHealthHandler(db, serviceName)
	routeHandler := handler.NewRouteHandler(routeService)
	placeHandler := handler.NewPlaceHandler(placeService)
	medicalHandler := handler.NewMedicalHandler(medicalService)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.SetHTMLTemplate(handler.MustLoadTemplates())

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(collector.GinMiddleware())

	// Register routes
	healthHandler.RegisterRoutes(&router.RouterGroup)
	routeHandler.RegisterRoutes(&router.RouterGroup)
	placeHandler.RegisterRoutes(&router.RouterGroup)
	medicalHandler.RegisterRoutes(&router.RouterGroup)
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-routing...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-routing stopped")
}

// connectRecordStore returns nil when the store is unconfigured or unreachable;
// the medical ID endpoint then answers 500 while routing keeps working.
func connectRecordStore(cfg *config.ServiceConfig, log *zap.Logger) *gorm.DB {
	if !cfg.DBConfig.Configured() {
		log.Warn("medical record store not configured")
		return nil
	}

	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Warn("medical record store unavailable", zap.Error(err))
		return nil
	}

	return migrateRecordStore(db, cfg, log)
}

// migrateRecordStore applies the schema and returns nil if that fails, leaving
// the store unavailable.
func migrateRecordStore(db *gorm.DB, cfg *config.ServiceConfig, log *zap.Logger) *gorm.DB {
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.UserModel{}); err != nil {
			log.Warn("medical record store auto-migration failed", zap.Error(err))
			return nil
		}
		log.Info("database migration completed (dev auto-migrate)")
		return db
	}

	if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), cfg.MigrationsDir, log); err != nil {
		log.Warn("medical record store migrations failed", zap.Error(err))
		return nil
	}
	return db
}
