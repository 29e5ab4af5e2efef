package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/rentals/internal/handlers"
	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/metrics"
	"github.com/monocle-dev/rentals/internal/middleware"
)

type Options struct {
	Logger         logging.Logger
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter
}

func NewRouter(h *handlers.Handler, graphql http.Handler, opts Options) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestSession(opts.Logger))
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Handler())
	}

	r.GET("/", h.Root)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.POST("/graphql", gin.WrapH(graphql))

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.CreateUser)
			auth.POST("/login", h.LoginUser)
		}

		api.GET("/users/:email/products", h.ListUserProducts)

		products := api.Group("/products")
		{
			products.POST("", h.CreateProduct)
			products.GET("/:id", h.GetProduct)
			products.DELETE("/:id", h.DeleteProduct)
		}
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// Credentials cannot be combined with a wildcard origin.
	if slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
		return config
	}

	config.AllowOrigins = origins

	return config
}
