package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel_manager/internal/config"
	"travel_manager/internal/services"
)

// Login verifies credentials and returns a signed bearer token plus the user
// record (password hash excluded by the model's json tags).
func Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.Login(config.DB, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}
