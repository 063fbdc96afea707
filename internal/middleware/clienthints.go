package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientHints are the request headers the shell renders from
var ClientHints = []string{
	"Sec-CH-Prefers-Color-Scheme",
	"Sec-CH-Viewport-Width",
	"Sec-CH-UA-Mobile",
}

// ClientHintsMiddleware asks browsers to send the color scheme and viewport
// hints, and marks responses as varying on them
func ClientHintsMiddleware() gin.HandlerFunc {
	hints := strings.Join(ClientHints, ", ")

	return func(c *gin.Context) {
		c.Header("Accept-CH", hints)
		c.Header("Critical-CH", "Sec-CH-Prefers-Color-Scheme")
		c.Writer.Header().Add("Vary", hints+", Cookie")
		c.Next()
	}
}
