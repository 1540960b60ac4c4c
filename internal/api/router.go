package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/techhunt/api/docs"
	"github.com/techhunt/api/internal/api/handler"
	"github.com/techhunt/api/internal/api/middleware"
	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/core/ports"
)

// Dependencies carries everything NewRouter wires into the route table.
type Dependencies struct {
	Logger      zerolog.Logger
	Tokens      ports.TokenService
	Credentials middleware.CredentialStore
	Users       ports.UserService
	Products    ports.ProductService
	Reviews     ports.ReviewService
	Cart        ports.CartService
	// Health maps dependency names to readiness checks.
	Health      map[string]handler.Pinger
	CORSOrigins []string
	// Registry receives the HTTP metrics. Nil uses the default Prometheus
	// registry, which also holds the metrics package collectors.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: origins}))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "techhunt",
		Subsystem:  "http",
		Registerer: registerer,
	}))

	// --- Handlers ---
	healthHandler := handler.NewHealthHandler(deps.Health)
	authHandler := handler.NewAuthHandler(deps.Tokens)
	userHandler := handler.NewUserHandler(deps.Users)
	productHandler := handler.NewProductHandler(deps.Products)
	reviewHandler := handler.NewReviewHandler(deps.Reviews)
	cartHandler := handler.NewCartHandler(deps.Cart)

	// --- Access guard chain ---
	identity := middleware.Auth(deps.Tokens)
	adminOnly := middleware.RequireRole(deps.Credentials, domain.RoleAdmin)

	// --- Probes, metrics, docs (no auth required) ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth ---
	e.POST("/jwt", authHandler.IssueToken)

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, identity, adminOnly)
	e.GET("/users/admin/:email", userHandler.IsAdmin, identity)
	e.GET("/users/mod/:email", userHandler.IsModerator, identity)
	e.PATCH("/users/admin/:id", userHandler.GrantAdmin, identity, adminOnly)
	e.PATCH("/users/mod/:id", userHandler.GrantModerator, identity, adminOnly)
	e.DELETE("/users/:id", userHandler.Delete, identity, adminOnly)

	// --- Catalog ---
	e.GET("/menu", productHandler.Menu)
	e.GET("/products", productHandler.Search)
	e.GET("/products/:productId", productHandler.Get)
	e.POST("/api/upvote/:productId", productHandler.Upvote)
	e.POST("/api/report/:productId", productHandler.Report)

	// --- Reviews ---
	e.POST("/reviews", reviewHandler.Create)
	e.GET("/reviews", reviewHandler.List)

	// --- Cart (unguarded) ---
	e.POST("/dashboard/userProduct", cartHandler.Add)
	e.GET("/dashboard/userProduct", cartHandler.List)
	e.DELETE("/dashboard/userProduct/:id", cartHandler.Remove)

	return e
}
