package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Infrastructure
	Postgres PostgresConfig

	// Calendar bot specifics
	Telegram    TelegramConfig
	GoogleOAuth GoogleOAuthConfig
	Encryption  EncryptionConfig
	State       StateConfig
	Reminder    ReminderConfig
	RateLimit   RateLimitConfig
	Timezone    TimezoneConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type EncryptionConfig struct {
	// Key is a url-safe base64 encoded 32-byte key used to seal OAuth tokens.
	Key string
}

type StateConfig struct {
	// Secret signs the OAuth state parameter.
	Secret string
}

type ReminderConfig struct {
	// PollInterval is the sweep cadence in seconds.
	PollInterval int
	// LeadMinutes is how long before an event a reminder fires.
	LeadMinutes int
}

type RateLimitConfig struct {
	// RequestsPerMinute caps commands per chat.
	RequestsPerMinute int
	// Burst is the short-term allowance above the steady rate.
	Burst int
}

type TimezoneConfig struct {
	// Default is the IANA zone assumed for users who never ran /settz.
	Default string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Google OAuth
	cfg.GoogleOAuth.ClientID = viper.GetString("google_oauth.client_id")
	cfg.GoogleOAuth.ClientSecret = viper.GetString("google_oauth.client_secret")
	cfg.GoogleOAuth.RedirectURI = viper.GetString("google_oauth.redirect_uri")
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.GoogleOAuth.ClientSecret = clientSecret
	}

	// Secrets
	cfg.Encryption.Key = viper.GetString("encryption.key")
	if encKey := viper.GetString("encryption_key"); encKey != "" {
		cfg.Encryption.Key = encKey
	}
	cfg.State.Secret = viper.GetString("state.secret")
	if stateSecret := viper.GetString("state_secret"); stateSecret != "" {
		cfg.State.Secret = stateSecret
	}

	// Reminders & rate limiting
	cfg.Reminder.PollInterval = viper.GetInt("reminder.poll_interval")
	cfg.Reminder.LeadMinutes = viper.GetInt("reminder.lead_minutes")
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Timezone
	cfg.Timezone.Default = viper.GetString("timezone.default")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Timezone.Default == "" {
		return fmt.Errorf("timezone.default is required")
	}
	if c.Reminder.PollInterval <= 0 {
		return fmt.Errorf("reminder.poll_interval must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "calendar_bot")
	viper.SetDefault("postgres.ssl_mode", "disable")
	viper.SetDefault("reminder.poll_interval", 60)
	viper.SetDefault("reminder.lead_minutes", 30)
	viper.SetDefault("rate_limit.requests_per_minute", 20)
	viper.SetDefault("rate_limit.burst", 5)
	viper.SetDefault("timezone.default", "Australia/Melbourne")
}
