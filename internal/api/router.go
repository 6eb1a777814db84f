package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/classifieds-system/docs"
	"github.com/99minutos/classifieds-system/internal/api/handler"
	"github.com/99minutos/classifieds-system/internal/api/middleware"
	"github.com/99minutos/classifieds-system/internal/core/policy"
	"github.com/99minutos/classifieds-system/internal/core/ports"
	"github.com/99minutos/classifieds-system/internal/pkg/metrics"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Auth           ports.AuthService
	Users          ports.UserService
	Advertisements ports.AdvertisementService

	Metrics *metrics.Metrics
	// Registry receives the HTTP request metrics and is served on /metrics.
	// Nil disables both.
	Registry *prometheus.Registry
	Logger   zerolog.Logger

	// RequestTimeout bounds each request's context. Zero means no bound.
	RequestTimeout time.Duration
	Swagger        bool
	StartedAt      time.Time
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	if d.RequestTimeout > 0 {
		e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
			Timeout: d.RequestTimeout,
		}))
	}
	if d.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "classifieds",
			Subsystem:  "http",
			Registerer: d.Registry,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: d.Registry,
		}))
	}

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	adHandler := handler.NewAdvertisementHandler(d.Advertisements)
	healthHandler := handler.NewHealthHandler(d.StartedAt)
	authMiddleware := middleware.Auth(d.Auth)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)

	// --- Users ---
	e.POST("/user", userHandler.Create)
	e.GET("/user", userHandler.List, authMiddleware, middleware.Authorize("list_users", policy.CanListUsers, d.Metrics))
	e.GET("/user/:id", userHandler.Get)
	e.PATCH("/user/:id", userHandler.Update, authMiddleware)
	e.DELETE("/user/:id", userHandler.Delete, authMiddleware)

	// --- Advertisements ---
	e.POST("/advertisement", adHandler.Create, authMiddleware)
	e.GET("/advertisement", adHandler.Search)
	e.GET("/advertisement/:id", adHandler.Get)
	e.PATCH("/advertisement/:id", adHandler.Update, authMiddleware)
	e.DELETE("/advertisement/:id", adHandler.Delete, authMiddleware)

	// --- Health probe and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	if d.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

// requestLogger feeds echo's request logger into zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
