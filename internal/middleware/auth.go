package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the shared secret on protected routes.
const APIKeyHeader = "x-api-key"

// apiKeyQueryParam is accepted for WebSocket clients, which cannot set headers.
const apiKeyQueryParam = "api_key"

// APIKeyMiddleware lets a request through only when it carries the
// configured secret.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(APIKeyHeader)

		// If not found in header, try query parameter (for WebSocket)
		if provided == "" {
			provided = c.Query(apiKeyQueryParam)
		}

		if provided == "" || apiKey == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erreur": "Non autorisé"})
			return
		}

		c.Next()
	}
}
