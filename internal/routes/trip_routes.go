package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TripRoutes(r *gin.Engine) {
	trips := r.Group("/trips")
	trips.Use(middleware.RequireAuth())
	{
		trips.POST("/", controllers.CreateTrip)
		trips.GET("/", controllers.ListTrips)
		trips.GET("/vehicle/:vehicleNumber", controllers.TripsByVehicle)
		trips.GET("/driver/:driverId", controllers.TripsByDriver)
		trips.GET("/:id", controllers.GetTrip)
		trips.PUT("/:id", controllers.UpdateTrip)
		trips.DELETE("/:id", controllers.DeleteTrip)
	}
}
