package routes

import (
	"github.com/gin-gonic/gin"

	"yardkeeper/internal/controllers"
	"yardkeeper/internal/middleware"
)

func CheckoutRoutes(api *gin.RouterGroup) {
	checkouts := api.Group("/checkouts")
	checkouts.Use(middleware.RequireAuth())
	{
		checkouts.GET("", controllers.ListCheckouts)
		checkouts.GET("/quote/:plate", controllers.QuoteCheckout)
		checkouts.GET("/status/:id", controllers.CheckoutStatus)
		checkouts.POST("", controllers.CreateCheckout)
	}
}
