package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func FuelRoutes(r *gin.Engine) {
	fuel := r.Group("/fuel")
	fuel.Use(middleware.RequireAuth())
	{
		fuel.POST("/", controllers.AddFuel)
		fuel.GET("/", controllers.ListFuel)
		fuel.GET("/vehicle/:vehicleNumber", controllers.FuelByVehicle)
		fuel.GET("/:id", controllers.GetFuel)
		fuel.PUT("/:id", controllers.UpdateFuel)
		fuel.DELETE("/:id", controllers.DeleteFuel)
	}
}
