package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SparePartRoutes(r *gin.Engine) {
	spares := r.Group("/spare-parts")
	spares.Use(middleware.RequireAuth())
	{
		spares.POST("/", controllers.AddSparePart)
		spares.GET("/", controllers.ListSpareParts)
		spares.GET("/vehicle/:vehicleNumber", controllers.SparePartsByVehicle)
		spares.PUT("/:id", controllers.UpdateSparePart)
		spares.DELETE("/:id", controllers.DeleteSparePart)
	}
}
