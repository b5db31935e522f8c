package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func VendorRoutes(r *gin.Engine) {
	vendors := r.Group("/vendors")
	vendors.Use(middleware.RequireAuth())
	{
		vendors.POST("/", controllers.AddVendor)
		vendors.GET("/", controllers.ListVendors)
		vendors.GET("/:id/summary", controllers.GetVendorSummary)
	}

	payments := r.Group("/vendor-payments")
	payments.Use(middleware.RequireAuth())
	{
		payments.POST("/", controllers.CreateVendorPayment)
		payments.GET("/vendor/:vendorId", controllers.PaymentsByVendor)
		payments.DELETE("/:id", controllers.DeleteVendorPayment)
	}
}
