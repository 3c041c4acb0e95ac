package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const pageNotFoundMessage = "Oops! Page not found."

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.CORSAllowOrigin))

	router.SetHTMLTemplate(loadTemplates())

	// Serve static files
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	health := NewHealthController(cfg.Database, cfg.Counter, cfg.Version)
	quotesController := NewQuotesController(cfg.QuoteReader)
	uiController := NewUIController(cfg.QuoteReader)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Quotes API
	api := router.Group("/api/v1")
	api.GET("/quote/:id", quotesController.GetQuote)
	api.GET("/random-quote", quotesController.GetRandomQuote)

	// UI routes
	router.GET("/", uiController.MainPage)

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, pageNotFoundMessage)
	})

	return router
}
