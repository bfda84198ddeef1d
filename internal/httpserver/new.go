package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	accountHTTP "github.com/Rudra-Tiwari-codes/Calendar-test/internal/account/delivery/http"
	tgDelivery "github.com/Rudra-Tiwari-codes/Calendar-test/internal/event/delivery/telegram"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	telegramHandler tgDelivery.Handler
	oauthHandler    accountHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TelegramHandler tgDelivery.Handler
	OAuthHandler    accountHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		telegramHandler: cfg.TelegramHandler,
		oauthHandler:    cfg.OAuthHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
