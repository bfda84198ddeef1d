package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"github.com/Rudra-Tiwari-codes/Calendar-test/config"
	"github.com/Rudra-Tiwari-codes/Calendar-test/config/postgre"
	accountHTTP "github.com/Rudra-Tiwari-codes/Calendar-test/internal/account/delivery/http"
	accountUsecase "github.com/Rudra-Tiwari-codes/Calendar-test/internal/account/usecase"
	tgDelivery "github.com/Rudra-Tiwari-codes/Calendar-test/internal/event/delivery/telegram"
	eventUsecase "github.com/Rudra-Tiwari-codes/Calendar-test/internal/event/usecase"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/httpserver"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/middleware"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/reminder"
	repoPostgre "github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository/postgre"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/encrypter"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/log"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/scope"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/telegram"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default timezone: %s", cfg.Timezone.Default)

	// 3. Infrastructure
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, db)

	repo := repoPostgre.New(db, logger)

	enc, err := encrypter.New(cfg.Encryption.Key)
	if err != nil {
		logger.Error(ctx, "Failed to initialize token encrypter: ", err)
		return
	}

	states, err := scope.NewManager(cfg.State.Secret)
	if err != nil {
		logger.Error(ctx, "Failed to initialize state manager: ", err)
		return
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURI,
		Scopes: []string{
			calendar.CalendarEventsScope,
			"openid", "email",
		},
		Endpoint: google.Endpoint,
	}

	// 4. Telegram bot
	bot := telegram.NewBot(cfg.Telegram.BotToken)

	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/api/v1/telegram/webhook"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL != "" {
		if whErr := bot.SetWebhook(webhookURL); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	// 5. Domains
	accountUC := accountUsecase.New(logger, repo, oauthCfg, states, enc, cfg.Timezone.Default)
	oauthHandler := accountHTTP.New(logger, accountUC)

	calendars := eventUsecase.NewCalendarFactory(oauthCfg, enc)
	eventUC := eventUsecase.New(logger, repo, calendars,
		cfg.Timezone.Default, time.Duration(cfg.Reminder.LeadMinutes)*time.Minute)

	mw := middleware.New(logger, cfg.RateLimit)
	telegramHandler := tgDelivery.New(logger, eventUC, accountUC, bot, mw)

	// 6. Reminder service
	reminderSvc := reminder.New(logger, repo, bot,
		time.Duration(cfg.Reminder.PollInterval)*time.Second)
	go reminderSvc.Run(ctx)

	// 7. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
		OAuthHandler:    oauthHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
