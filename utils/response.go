package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONError sends the error shape of the public contract: an "error"
// message plus, for validation failures, the offending field names.
func JSONError(c *gin.Context, status int, message string, details []string) {
	body := gin.H{"error": message}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(status, body)
}
