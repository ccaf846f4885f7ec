package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "🚧 Lapor Jalan Rusak API",
		"status":  "running",
	})
}
