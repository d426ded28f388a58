package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// CacheControl lets clients reuse successful GET responses for maxAgeSeconds.
// Responses are private since they are not shared between players.
func CacheControl(maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			c.Header("Cache-Control", fmt.Sprintf("private, max-age=%d", maxAgeSeconds))
		}
		c.Next()
	}
}

// NoStore marks responses that must never be cached, such as one-shot sessions.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
