package model

// Scope carries the identity of the chat user a request acts on behalf of.
type Scope struct {
	UserID   string // stable identifier, e.g. "telegram_123456"
	ChatID   int64  // Telegram chat for replies
	Username string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
