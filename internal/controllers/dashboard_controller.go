package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel_manager/internal/config"
	"travel_manager/internal/services"
)

// Dashboard returns the fleet-wide roll-up shown on the landing page.
func Dashboard(c *gin.Context) {
	summary, err := services.SummarizeDashboard(config.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
