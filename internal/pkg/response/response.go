package response

import "github.com/gin-gonic/gin"

// JSON writes a success payload. The admin dashboard consumes bodies
// as-is, so no envelope is added.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error writes the wire error shape the dashboard client parses:
// {"error": "<message>"}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Deleted writes the standard body for delete endpoints.
func Deleted(c *gin.Context) {
	c.JSON(200, gin.H{"success": true})
}
