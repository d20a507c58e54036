package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Hello answers the public root route.
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "hello"})
}

// Test is the second public smoke-test route.
func Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Je suis la route 2!"})
}

// Health reports whether the database answers a ping.
func Health(ping func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := ping(ctx); err != nil {
			log.Printf("Health check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "indisponible"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
