package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func CustomerRoutes(r *gin.Engine) {
	customers := r.Group("/customers")
	customers.Use(middleware.RequireAuth())
	{
		customers.POST("/", controllers.CreateCustomer)
		customers.GET("/", controllers.ListCustomers)
		customers.GET("/:id", controllers.GetCustomer)
		customers.PUT("/:id", controllers.UpdateCustomer)
	}
}
