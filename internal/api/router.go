package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkshrink/linkshrink/internal/api/handler"
	"github.com/linkshrink/linkshrink/internal/api/middleware"
	"github.com/linkshrink/linkshrink/internal/core/service"
	"github.com/linkshrink/linkshrink/internal/infrastructure/config"
	mongostore "github.com/linkshrink/linkshrink/internal/infrastructure/db/mongo"
	redisstore "github.com/linkshrink/linkshrink/internal/infrastructure/db/redis"
	healthhandlers "github.com/linkshrink/linkshrink/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Renderer = handler.NewRenderer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("linkshrink"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	linkRepo := mongostore.NewShortURLRepository(db)
	sessions := redisstore.NewSessionStore(rdb, cfg.SessionTTL)

	authService := service.NewAuthService(userRepo, log)
	linkService := service.NewLinkService(linkRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions, log)
	linkHandler := handler.NewLinkHandler(linkService, log)
	pageHandler := handler.NewPageHandler(linkService, authService, log)

	e.Use(middleware.Session(sessions, log))
	requireLogin := middleware.RequireLogin()

	// --- Pages and auth actions ---
	e.GET("/", pageHandler.Home)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register)

	// --- Link routes ---
	e.POST("/shortUrls", linkHandler.Create, requireLogin)
	e.DELETE("/shortUrls/:id/delete", linkHandler.Delete, requireLogin)
	e.GET("/decode/:shortUrl", linkHandler.Decode)
	// Catch-all redirect path; echo matches static segments above first.
	e.GET("/:shortUrl", linkHandler.Redirect)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
