package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/plastifind/collection-system/internal/api/handler"
	"github.com/plastifind/collection-system/internal/api/middleware"
	"github.com/plastifind/collection-system/internal/core/policy"
	"github.com/plastifind/collection-system/internal/core/service"
	mongodb "github.com/plastifind/collection-system/internal/infrastructure/db/mongo"
	redisdb "github.com/plastifind/collection-system/internal/infrastructure/db/redis"
	"github.com/plastifind/collection-system/internal/infrastructure/queue"
	"github.com/plastifind/collection-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notification dispatcher is returned so main can start its workers.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("collection"))

	// --- Repositories ---
	actorRepo := mongodb.NewActorRepository(db)
	submissionRepo := mongodb.NewSubmissionRepository(db)
	zoneRepo := mongodb.NewZoneRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	// --- Services ---
	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationRepo, log)
	authService := service.NewAuthService(actorRepo, cfg.JWTSecret, cfg.TokenTTL)
	submissionService := service.NewSubmissionService(submissionRepo, zoneRepo, dispatcher, log)
	zoneService := service.NewZoneService(zoneRepo, log)
	actorService := service.NewActorService(actorRepo, log)
	reportService := service.NewReportService(submissionRepo, redisdb.NewReportCache(rdb), log)
	notificationService := service.NewNotificationService(notificationRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	zoneHandler := handler.NewZoneHandler(zoneService)
	actorHandler := handler.NewActorHandler(actorService)
	reportHandler := handler.NewReportHandler(reportService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	auth := middleware.Auth(cfg.JWTSecret)
	v1 := e.Group("/v1", auth)

	v1.GET("/submissions", submissionHandler.List, middleware.Require(policy.OpListSubmissions))
	v1.POST("/submissions", submissionHandler.Create, middleware.Require(policy.OpCreateSubmission))
	v1.PATCH("/submissions/:id/status", submissionHandler.Transition, middleware.Require(policy.OpTransitionSubmission))
	v1.DELETE("/submissions/:id", submissionHandler.Delete, middleware.Require(policy.OpDeleteSubmission))

	v1.GET("/zones", zoneHandler.List, middleware.Require(policy.OpReadZones))
	v1.POST("/zones", zoneHandler.Create, middleware.Require(policy.OpWriteZones))
	v1.PATCH("/zones/:id", zoneHandler.Update, middleware.Require(policy.OpWriteZones))
	v1.DELETE("/zones/:id", zoneHandler.Delete, middleware.Require(policy.OpWriteZones))

	v1.GET("/users", actorHandler.List, middleware.Require(policy.OpListActors))
	v1.PATCH("/users/:id", actorHandler.Update, middleware.Require(policy.OpMutateActor))

	v1.GET("/reports/dashboard", reportHandler.Dashboard, middleware.Require(policy.OpReadReports))

	v1.GET("/notifications", notificationHandler.List, middleware.Require(policy.OpReadNotifications))
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead, middleware.Require(policy.OpAckNotification))

	return e, dispatcher
}
