package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Speech Practice API",
			"version":     "1.0.0",
			"description": "API for evaluating spoken language practice attempts",
			"status":      "running",
		})
	}
}
