package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.RequireAuth())
	{
		vehicles.POST("/", controllers.CreateVehicle)
		vehicles.GET("/", controllers.ListVehicles)
		vehicles.GET("/:vehicleNumber", controllers.GetVehicle)
		vehicles.GET("/:vehicleNumber/summary", controllers.GetVehicleSummary)
		vehicles.DELETE("/id/:id", controllers.DeleteVehicle)
	}
}
