package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Write sends the standard error body and stops handler processing.
func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

// Internal logs the underlying error and returns only the generic message
// to the caller. Database details never reach the response body.
func Internal(c *gin.Context, message string, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	Write(c, http.StatusInternalServerError, message)
}
