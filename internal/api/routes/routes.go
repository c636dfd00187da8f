package routes

import (
	"net/http"

	"sos-escalation-backend/internal/api/handlers"
	"sos-escalation-backend/internal/api/middleware"
	"sos-escalation-backend/internal/auth"
	"sos-escalation-backend/internal/config"
	"sos-escalation-backend/internal/database/models"
	"sos-escalation-backend/internal/logger"
	"sos-escalation-backend/internal/metrics"
	"sos-escalation-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services are the caller-facing operations the router exposes
type Services struct {
	SOS      service.SOSServiceInterface
	Contacts service.ContactServiceInterface
	Location service.LocationServiceInterface
	Members  service.MemberServiceInterface
}

// Observability wires request metrics, the /metrics endpoint and readiness checks
type Observability struct {
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	HealthChecks map[string]handlers.Pinger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, services Services, obs Observability) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(obs.Metrics))
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.ClientIP())

	var authMiddleware *auth.AuthMiddleware
	if cfg.AuthEnabled() {
		authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTTTL)
		if err != nil {
			logger.New().WithError(err).Warn("Failed to initialize auth service, API routes are unauthenticated")
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	} else {
		logger.New().Warn("JWT_SECRET not set, API routes are unauthenticated")
	}

	healthHandler := handlers.NewHealthHandler(db, obs.HealthChecks)
	sosHandler := handlers.NewSOSHandler(services.SOS)
	contactHandler := handlers.NewContactHandler(services.Contacts)
	locationHandler := handlers.NewLocationHandler(services.Location)
	memberHandler := handlers.NewMemberHandler(services.Members)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if obs.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(obs.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		sos := v1.Group("/sos")
		{
			sos.POST("", sosHandler.Activate)
			sos.GET("/:id", sosHandler.GetEvent)
			sos.POST("/:id/resolve", sosHandler.Resolve)
			sos.POST("/:id/escalate", sosHandler.Escalate)
			sos.POST("/:id/notifications/:notificationId/ack", sosHandler.Acknowledge)
		}

		contacts := v1.Group("/contacts")
		{
			contacts.POST("", contactHandler.AddEmergencyContact)
			contacts.DELETE("/:id", contactHandler.DeactivateContact)
		}

		// only admins change who escalation reaches
		memberWrites := []gin.HandlerFunc{}
		if authMiddleware != nil {
			memberWrites = append(memberWrites, authMiddleware.RequireRole(string(models.MemberRoleAdmin)))
		}
		members := v1.Group("/members")
		{
			members.POST("", append(memberWrites, memberHandler.CreateMember)...)
			members.GET("", memberHandler.ListMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", append(memberWrites, memberHandler.UpdateMember)...)
		}

		subjects := v1.Group("/subjects/:subjectId")
		{
			subjects.GET("/sos", sosHandler.ListBySubject)
			subjects.POST("/emergency-test", sosHandler.EmergencyTest)
			subjects.GET("/contacts", contactHandler.ListContacts)
			subjects.POST("/location", locationHandler.ReportLocation)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Route not found",
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
