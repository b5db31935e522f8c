package routes

import (
	"travel_manager/internal/controllers"
	"travel_manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	drivers := r.Group("/drivers")
	drivers.Use(middleware.RequireAuth())
	{
		drivers.POST("/", controllers.CreateDriver)
		drivers.GET("/", controllers.ListDrivers)
		drivers.GET("/:id", controllers.GetDriver)
	}

	expenses := r.Group("/driver-expenses")
	expenses.Use(middleware.RequireAuth())
	{
		expenses.POST("/", controllers.CreateDriverExpense)
		expenses.GET("/trip/:tripId", controllers.ExpensesByTrip)
		expenses.GET("/driver/:driverId", controllers.ExpensesByDriver)
		expenses.PUT("/:id", controllers.UpdateDriverExpense)
		expenses.DELETE("/:id", controllers.DeleteDriverExpense)
	}

	salaries := r.Group("/driver-salaries")
	salaries.Use(middleware.RequireAuth())
	{
		salaries.POST("/", controllers.CreateDriverSalary)
		salaries.GET("/driver/:driverId", controllers.SalariesByDriver)
		salaries.DELETE("/:id", controllers.DeleteDriverSalary)
	}
}
