package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the OAuth redirect endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/oauth/callback", h.Callback)
}
