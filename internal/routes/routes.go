package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"yardkeeper/internal/config"
)

// SetupRouter wires every route group onto a fresh engine.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
	})
	r.Static("/uploads", config.UploadDir())

	api := r.Group("/api")
	AuthRoutes(api)
	VehicleRoutes(api)
	CheckoutRoutes(api)
	SettingsRoutes(api)
	LocationRoutes(api)

	return r
}
