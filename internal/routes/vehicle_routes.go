package routes

import (
	"github.com/gin-gonic/gin"

	"yardkeeper/internal/controllers"
	"yardkeeper/internal/middleware"
)

func VehicleRoutes(api *gin.RouterGroup) {
	vehicles := api.Group("/vehicles")
	vehicles.Use(middleware.RequireAuth())
	{
		vehicles.POST("", controllers.CreateVehicle)
		vehicles.GET("", controllers.ListVehicles)
		vehicles.GET("/checked-out", controllers.ListCheckouts)
		vehicles.GET("/search/:plate", controllers.SearchVehicle)
		vehicles.GET("/:id", controllers.GetVehicle)
		vehicles.PUT("/:id", controllers.UpdateVehicle)
		vehicles.DELETE("/:id", controllers.DeleteVehicle)
		vehicles.POST("/:id/images", controllers.UploadVehicleImages)
	}
}
