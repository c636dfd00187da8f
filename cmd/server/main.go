package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sos-escalation-backend/internal/api/handlers"
	"sos-escalation-backend/internal/api/routes"
	"sos-escalation-backend/internal/config"
	"sos-escalation-backend/internal/database"
	"sos-escalation-backend/internal/events"
	"sos-escalation-backend/internal/location"
	"sos-escalation-backend/internal/logger"
	"sos-escalation-backend/internal/metrics"
	"sos-escalation-backend/internal/notification"
	"sos-escalation-backend/internal/repository"
	"sos-escalation-backend/internal/scheduler"
	"sos-escalation-backend/internal/service"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	_ "sos-escalation-backend/docs" // This is needed for swag
)

//	@title			SOS Escalation Backend API
//	@version		1.0
//	@description	Emergency SOS activation and tiered escalation for workers and clients.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	clk := clock.New()
	m := metrics.New(prometheus.DefaultRegisterer)
	validate := validator.New()
	healthChecks := make(map[string]handlers.Pinger)

	// Last-known fixes: redis when shared between instances, process memory otherwise
	var store location.Store
	if cfg.RedisURL != "" {
		redisStore, err := location.NewRedisStore(ctx, cfg.RedisURL, cfg.LocationFixTTL)
		if err != nil {
			logrus.Fatal("Failed to connect to redis: ", err)
		}
		defer redisStore.Close()
		healthChecks["redis"] = redisStore
		store = redisStore
	} else {
		store = location.NewMemoryStore(cfg.LocationFixTTL)
	}

	providers := []location.Provider{store}
	if cfg.GeoIPDBPath != "" {
		geoip, err := location.NewGeoIPProvider(cfg.GeoIPDBPath, cfg.NotifyLanguage)
		if err != nil {
			logrus.WithError(err).Warn("GeoIP fallback disabled")
		} else {
			defer geoip.Close()
			providers = append(providers, geoip)
		}
	}

	catalog, err := notification.NewCatalog(cfg.NotifyLanguage)
	if err != nil {
		logrus.Fatal("Failed to load notification templates: ", err)
	}
	dispatcher := notification.NewLogDispatcher(notification.Config{
		MaxAttempts:   cfg.NotifyMaxAttempts,
		RetryInterval: cfg.NotifyRetryInterval,
		RatePerSecond: cfg.NotifyRatePerSecond,
		Burst:         cfg.NotifyBurst,
		Language:      cfg.NotifyLanguage,
	}, catalog, clk, m)

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, m)
	}
	defer publisher.Close()

	escalations := scheduler.New(clk)
	defer escalations.Stop()

	contactRepo := repository.NewEmergencyContactRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	sosService := service.NewSOSService(service.SOSDependencies{
		Events:     repository.NewSOSEventRepository(db),
		Contacts:   contactRepo,
		Members:    memberRepo,
		Locator:    location.NewChain(providers...),
		Dispatcher: dispatcher,
		Scheduler:  escalations,
		Publisher:  publisher,
		Clock:      clk,
		Metrics:    m,
		Validator:  validate,
	}, service.PolicyFromConfig(cfg))

	// Timers live in memory; pick up events a previous process left mid-escalation.
	if summary, err := sosService.Rescan(ctx); err != nil {
		logrus.WithError(err).Error("Startup rescan failed")
	} else {
		logrus.WithFields(logrus.Fields{
			"scanned":             summary.Scanned,
			"secondary_notified":  summary.SecondaryNotified,
			"escalations_applied": summary.EscalationsApplied,
		}).Info("Startup rescan completed")
	}

	if cfg.RescanEnabled {
		rescanner, err := scheduler.NewRescanner(cfg.RescanInterval, func(ctx context.Context) {
			if _, err := sosService.Rescan(ctx); err != nil {
				logrus.WithError(err).Error("Periodic rescan failed")
			}
		})
		if err != nil {
			logrus.Fatal("Failed to start rescan: ", err)
		}
		rescanner.Start()
		defer rescanner.Stop()
	}

	router := routes.SetupRoutes(db, cfg, routes.Services{
		SOS:      sosService,
		Contacts: service.NewContactService(contactRepo, validate),
		Location: service.NewLocationService(store, validate),
		Members:  service.NewMemberService(memberRepo, validate),
	}, routes.Observability{
		Metrics:      m,
		Gatherer:     prometheus.DefaultGatherer,
		HealthChecks: healthChecks,
	})

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("HTTP server shutdown did not complete")
		}
	}()

	logrus.Infof("Starting server on port %s", port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatal("Failed to start server: ", err)
	}
	logrus.Info("Server stopped")
}
