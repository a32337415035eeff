package handlers

import (
	"net/http"

	"hirewire/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm HireWire",
		"dependencies": utils.GetHealthStatus(),
	})
}
