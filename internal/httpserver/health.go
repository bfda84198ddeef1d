package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Calendar Bot API"
	HealthVersion = "1.0.0"
	ServiceName   = "calendar-bot"
)

// healthCheck handles health check requests.
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports readiness to serve traffic.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck reports process liveness.
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
