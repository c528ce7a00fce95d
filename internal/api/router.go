package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Farhadhossain379/pythonFastApi/internal/api/handler"
	"github.com/Farhadhossain379/pythonFastApi/internal/api/middleware"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Logger    zerolog.Logger
	Auth      ports.AuthService
	Customers ports.CustomerService
	Tokens    ports.TokenVerifier
	// Limiter is optional; nil disables login throttling.
	Limiter        ports.LoginLimiter
	Health         []ports.HealthChecker
	AllowedOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	authHandler := handler.NewAuthHandler(deps.Auth)
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	healthHandler := handler.NewHealthHandler(deps.Health...)

	api := e.Group("/api")

	// --- Public auth routes ---
	api.POST("/register", authHandler.Register)
	if deps.Limiter != nil {
		api.POST("/login", authHandler.Login, middleware.LoginThrottle(deps.Limiter, deps.Logger))
	} else {
		api.POST("/login", authHandler.Login)
	}

	// --- Protected routes ---
	protected := api.Group("", middleware.Auth(deps.Tokens))
	protected.GET("/me", authHandler.Me)
	protected.POST("/addCustomer", customerHandler.Create)
	protected.GET("/getAllCustomers", customerHandler.List)
	protected.GET("/getCustomerById/:id", customerHandler.Get)
	protected.PUT("/updateCustomerById/:id", customerHandler.Update)
	protected.DELETE("/deleteCustomerById/:id", customerHandler.Delete)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
