package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.Engine) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth())
	{
		dashboard.GET("/", controllers.Dashboard)
	}
}
