package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func MaintenanceRoutes(r *gin.Engine) {
	maintenance := r.Group("/maintenance")
	maintenance.Use(middleware.RequireAuth())
	{
		maintenance.POST("/", controllers.CreateMaintenance)
		maintenance.GET("/vehicle/:vehicleNumber", controllers.MaintenanceByVehicle)
		maintenance.GET("/monthly-cost/:vehicleNumber", controllers.MonthlyMaintenanceCost)
		maintenance.GET("/:id", controllers.GetMaintenance)
		maintenance.PUT("/:id", controllers.UpdateMaintenance)
		maintenance.DELETE("/:id", controllers.DeleteMaintenance)
	}
}
