package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// respondError writes the standard error envelope and aborts the request.
func respondError(c *gin.Context, status int, code, message string) {
	requestID, _ := c.Get("request_id")

	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":       code,
			"message":    message,
			"request_id": requestID,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
