package routes

import (
	"github.com/gin-gonic/gin"

	"yardkeeper/internal/controllers"
	"yardkeeper/internal/middleware"
)

func LocationRoutes(api *gin.RouterGroup) {
	locations := api.Group("/locations")
	locations.Use(middleware.RequireAuth())
	{
		locations.GET("/vehicle-counts", controllers.LocationVehicleCounts)
		locations.GET("/:id/stats", controllers.LocationStats)
	}
}
