package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(r *gin.Engine) {
	payments := r.Group("/payments")
	payments.Use(middleware.RequireAuth())
	{
		payments.POST("/", controllers.CreatePayment)
		payments.GET("/", controllers.ListPayments)
		payments.GET("/trip/:tripId", controllers.PaymentsByTrip)
		payments.DELETE("/:id", controllers.DeletePayment)
	}
}
