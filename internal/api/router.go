package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aceontech/content-api/internal/api/handler"
	"github.com/aceontech/content-api/internal/api/middleware"
	"github.com/aceontech/content-api/internal/core/service"
	"github.com/aceontech/content-api/internal/core/token"
	"github.com/aceontech/content-api/internal/infrastructure/config"
	mongodb "github.com/aceontech/content-api/internal/infrastructure/db/mongo"
	redisdb "github.com/aceontech/content-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("contentapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, cfg.BcryptCost, log)
	postService := service.NewPostService(postRepo, userRepo, log)

	cookies := handler.CookieOptions{
		MaxAge:   int(tokens.TTL().Seconds()),
		HTTPOnly: !cfg.IsDevelopment(),
		Secure:   !cfg.IsDevelopment(),
	}
	userHandler := handler.NewUserHandler(authService, cookies, log)
	postHandler := handler.NewPostHandler(postService, log)

	limiter := redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, "<h1>Content API</h1>")
	})
	e.POST("/api/signup", userHandler.Signup)
	e.POST("/api/login", userHandler.Login)

	// --- Protected routes ---
	posts := e.Group("/api/posts",
		middleware.Auth(tokens, userRepo),
		middleware.RateLimit(limiter, log),
	)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.PUT("", postHandler.Update)
	posts.DELETE("", postHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
