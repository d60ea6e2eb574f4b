package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterFallbacks makes unknown routes and unsupported methods answer with
// the same {"detail": ...} body the API uses everywhere else.
func RegisterFallbacks(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method Not Allowed"})
	})
}
