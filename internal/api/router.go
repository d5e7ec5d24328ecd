package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projecthub/projecthub/internal/api/handler"
	"github.com/projecthub/projecthub/internal/api/middleware"
	"github.com/projecthub/projecthub/internal/core/domain"
	"github.com/projecthub/projecthub/internal/core/service"
	"github.com/projecthub/projecthub/internal/core/token"
	mongostore "github.com/projecthub/projecthub/internal/infrastructure/db/mongo"
	redisstore "github.com/projecthub/projecthub/internal/infrastructure/db/redis"
	"github.com/projecthub/projecthub/internal/infrastructure/http/handlers"
)

// Options carries everything the router needs beyond its datastores.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("projecthub"))

	// --- Dependencies ---
	issuer := token.NewIssuer(opts.JWTSecret, opts.TokenTTL)
	userRepo := mongostore.NewUserRepository(db)
	projectRepo := mongostore.NewProjectRepository(db)
	listCache := redisstore.NewProjectCache(rdb)

	authService := service.NewAuthService(userRepo, issuer, opts.Logger)
	projectService := service.NewProjectService(projectRepo, listCache, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)

	authenticated := middleware.Auth(issuer, userRepo)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Project routes ---
	projects := e.Group("/projects", authenticated)
	projects.GET("/", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.POST("/", projectHandler.Create, adminOnly)
	projects.PUT("/:id", projectHandler.Update, adminOnly)
	projects.DELETE("/:id", projectHandler.Delete, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
