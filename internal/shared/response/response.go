package response

import (
	"github.com/gin-gonic/gin"
)

// The API serves bare payloads (arrays and objects, no envelope) to stay
// wire-compatible with existing clients.

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	body := gin.H{
		"code":    errorCode,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
