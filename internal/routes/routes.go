package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Tour & Travel Management API is running",
			"status":  "OK",
			"login":   "POST /auth/login with {username, password}",
		})
	})

	AuthRoutes(r)
	VehicleRoutes(r)
	TripRoutes(r)
	FuelRoutes(r)
	MaintenanceRoutes(r)
	CustomerRoutes(r)
	DriverRoutes(r)
	SparePartRoutes(r)
	PaymentRoutes(r)
	VendorRoutes(r)
	VehicleNoteRoutes(r)
	DashboardRoutes(r)

	return r
}
