package middlewares

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs the failing request line and writes a JSON error body.
// The underlying error stays in the log; only the message reaches the
// client.
func HttpError(c *gin.Context, message string, status int, err error) {
	log.Printf("%s %s -> %d %s: %v", c.Request.Method, c.Request.URL.Path, status, message, err)
	c.JSON(status, gin.H{"error": message})
}
