package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"io.winapps.travelgallery/internal/gallery"
	"io.winapps.travelgallery/internal/middleware"
)

// NewRouter wires the gallery and admin handlers into a gin engine
func NewRouter(galleryHandler *GalleryHandler, adminHandler *AdminHandler, gate *gallery.Gate, logger *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Add CORS middleware for the browser client
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-Request-ID, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/entries", galleryHandler.ListEntries)
		v1.POST("/entries", galleryHandler.CreateEntry)
		v1.POST("/entries/:id/like", galleryHandler.ToggleLike)
		v1.POST("/media", galleryHandler.UploadMedia)
		v1.DELETE("/media/:handle", galleryHandler.DiscardMedia)

		v1.POST("/admin/login", adminHandler.Login)

		// Protected admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminMiddleware(gate))
		{
			admin.GET("/entries", adminHandler.ListEntries)
			admin.PATCH("/entries/:id", adminHandler.UpdateEntry)
			admin.DELETE("/entries/:id", adminHandler.DeleteEntry)
		}
	}

	router.GET("/media/:handle", galleryHandler.ServeMedia)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
