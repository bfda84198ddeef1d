package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/account"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/log"
)

// Handler is the public interface for the OAuth HTTP delivery layer.
type Handler interface {
	Callback(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc account.UseCase
}

// New creates a new HTTP handler for the account domain.
func New(l log.Logger, uc account.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
