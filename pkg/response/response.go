package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The quiz API returns payloads bare (a JSON array of questions, an id->index
// map), so there is no success envelope; only error bodies are standardized.
// Two error shapes are in use: the quiz endpoint reports machine-readable
// codes, the answer-key endpoint a plain message.

// Coded sends an error body with a machine-readable code:
// {"errorCode": code, "message": message}.
func Coded(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"errorCode": code, "message": message})
}

// Err sends a plain error body: {"error": message}.
func Err(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// OK sends a 200 JSON response with the payload as-is.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
