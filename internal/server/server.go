package server

import (
	"context"
	"log/slog"
	"net/http"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/middleware"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const (
	analyticsPrefix = "/api/v1/analytics"
	bodyLimit       = "1M"
)

// Dependencies are the collaborators the HTTP server is assembled from
type Dependencies struct {
	DB        *gorm.DB
	Analytics services.AnalyticsServiceInterface
	Metrics   services.MetricsRecorderInterface
	Gatherer  prometheus.Gatherer
	Logger    *slog.Logger
}

// New builds the echo instance with middleware and routes. The rate limiter's
// sweeper stops when ctx is cancelled.
func New(ctx context.Context, cfg *config.Config, deps Dependencies) *echo.Echo {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(bodyLimit))

	health := handlers.NewHealthCheckHandler(deps.DB)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group(analyticsPrefix, middleware.RateLimiter(ctx, cfg.RateLimit))
	handlers.NewAnalyticsHandler(deps.Analytics, deps.Metrics, cfg.Analytics.DefaultForecastPeriod, cfg.Analytics.MaxForecastHorizon).RegisterRoutes(api)

	return e
}
