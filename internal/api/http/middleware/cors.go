package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows cross-origin calls from any origin with any method and
// header. Credentials are allowed, so the caller's Origin is echoed back instead of "*".
func CORSMiddleware() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	})

	return func(c *gin.Context) {
		// Browsers read "*" literally on credentialed requests, so the requested
		// headers are reflected instead. AllowHeaders is left empty above so the
		// preflight answer written by cors keeps this value.
		if c.Request.Method == http.MethodOptions && c.GetHeader("Origin") != "" {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(c)
	}
}
