package routes

import (
	"github.com/gin-gonic/gin"

	"yardkeeper/internal/controllers"
)

func AuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.LoginUser)
	}
}
