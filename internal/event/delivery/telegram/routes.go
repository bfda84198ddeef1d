package telegram

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the Telegram webhook endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/telegram/webhook", h.HandleWebhook)
}
