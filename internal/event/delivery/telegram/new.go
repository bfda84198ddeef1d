package telegram

import (
	"github.com/gin-gonic/gin"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/account"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/middleware"
	pkgLog "github.com/Rudra-Tiwari-codes/Calendar-test/pkg/log"
	pkgTelegram "github.com/Rudra-Tiwari-codes/Calendar-test/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	eventUC event.UseCase,
	accountUC account.UseCase,
	bot *pkgTelegram.Bot,
	mw middleware.Middleware,
) Handler {
	return &handler{
		l:         l,
		eventUC:   eventUC,
		accountUC: accountUC,
		bot:       bot,
		mw:        mw,
	}
}
