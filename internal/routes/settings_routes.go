package routes

import (
	"github.com/gin-gonic/gin"

	"yardkeeper/internal/controllers"
	"yardkeeper/internal/middleware"
)

func SettingsRoutes(api *gin.RouterGroup) {
	settings := api.Group("/settings")
	settings.Use(middleware.RequireAuthWithRole("admin"))
	{
		settings.GET("/locations", controllers.ListLocations)
		settings.POST("/locations", controllers.CreateLocation)
		settings.PUT("/locations/:id", controllers.UpdateLocation)
		settings.DELETE("/locations/:id", controllers.DeleteLocation)

		settings.GET("/vehicle-types", controllers.ListVehicleTypes)
		settings.POST("/vehicle-types", controllers.CreateVehicleType)
		settings.DELETE("/vehicle-types/:id", controllers.DeleteVehicleType)

		settings.GET("/prices", controllers.ListPrices)
		settings.POST("/prices", controllers.ReplacePrices)

		settings.GET("/users", controllers.ListUsers)
		settings.POST("/users", controllers.CreateUser)
		settings.DELETE("/users/:id", controllers.DeleteUser)
	}
}
