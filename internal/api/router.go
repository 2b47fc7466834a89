package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/teamplan/capacity-system/docs"
	"github.com/teamplan/capacity-system/internal/api/handler"
	"github.com/teamplan/capacity-system/internal/core/service"
	mongodb "github.com/teamplan/capacity-system/internal/infrastructure/db/mongo"
	redisdb "github.com/teamplan/capacity-system/internal/infrastructure/db/redis"
	"github.com/teamplan/capacity-system/pkg/clock"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, snapshotTTL time.Duration, clk clock.Clock, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("capacity_http"))

	// --- Dependencies ---
	roster := mongodb.NewRoster(db, clk)
	snapshots := redisdb.NewSnapshotCache(rdb, roster, snapshotTTL, log)

	capacityService := service.NewCapacityService(roster, clk, log)
	suitabilityService := service.NewSuitabilityService(roster, clk, log)
	scheduleService := service.NewScheduleService(roster, clk, log)
	analyticsService := service.NewAnalyticsService(snapshots, clk, log)

	capacityHandler := handler.NewCapacityHandler(capacityService)
	suitabilityHandler := handler.NewSuitabilityHandler(suitabilityService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	// --- Engine routes (read-only) ---
	v1 := e.Group("/v1")
	v1.GET("/engineers/capacity", capacityHandler.List)
	v1.GET("/engineers/:id/capacity", capacityHandler.Get)
	v1.GET("/projects/:id/suitability", suitabilityHandler.Get)
	v1.GET("/schedule/calendar", scheduleHandler.Calendar)
	v1.GET("/schedule/upcoming", scheduleHandler.Upcoming)
	v1.GET("/analytics/team", analyticsHandler.Team)

	// --- Health probes / operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
