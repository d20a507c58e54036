package handlers

import (
	"github.com/chachabrian/covoiturage-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WebSocketHandler subscribes the caller to the change feed
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	}
}
