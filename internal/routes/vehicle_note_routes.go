package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func VehicleNoteRoutes(r *gin.Engine) {
	notes := r.Group("/vehicle-notes")
	notes.Use(middleware.RequireAuth())
	{
		notes.POST("/", controllers.AddVehicleNote)
		notes.GET("/", controllers.ListVehicleNotes)
	}
}
