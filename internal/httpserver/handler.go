package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	accountHTTP "github.com/Rudra-Tiwari-codes/Calendar-test/internal/account/delivery/http"
	tgDelivery "github.com/Rudra-Tiwari-codes/Calendar-test/internal/event/delivery/telegram"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.telegramHandler != nil {
		tgDelivery.RegisterRoutes(api, srv.telegramHandler)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /api/v1/telegram/webhook")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.oauthHandler != nil {
		accountHTTP.RegisterRoutes(api, srv.oauthHandler)
		srv.l.Infof(ctx, "OAuth callback route registered at GET /api/v1/oauth/callback")
	} else {
		srv.l.Infof(ctx, "OAuth handler not configured, skipping callback route")
	}
}
