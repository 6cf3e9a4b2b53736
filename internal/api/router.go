package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/communitysafe/safety-gateway/docs"
	"github.com/communitysafe/safety-gateway/internal/api/handler"
	"github.com/communitysafe/safety-gateway/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(registry *service.Registry, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("safety"))

	// --- Handlers ---
	reportHandler := handler.NewReportHandler(registry)
	sosHandler := handler.NewSOSHandler(registry)

	// --- Report workflow routes ---
	report := e.Group("/v1/report")
	report.GET("", reportHandler.Get)
	report.PUT("/draft", reportHandler.UpdateDraft)
	report.POST("/location", reportHandler.CaptureLocation)
	report.POST("/submit", reportHandler.Submit)

	// --- SOS workflow routes ---
	sos := e.Group("/v1/sos")
	sos.GET("", sosHandler.Get)
	sos.POST("/activate", sosHandler.Activate)
	sos.POST("/resolve", sosHandler.Resolve)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb, registry)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
