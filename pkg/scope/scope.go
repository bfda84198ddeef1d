package scope

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// stateTTL bounds how long an OAuth consent round-trip may take.
const stateTTL = 5 * time.Minute

// Manager signs and verifies short-lived OAuth state tokens binding a
// consent flow to the chat user who initiated it.
type Manager interface {
	SignState(telegramID string) (string, error)
	VerifyState(state string) (string, error)
}

type implManager struct {
	secret []byte
}

// NewManager creates a state Manager with the given HMAC secret.
func NewManager(secret string) (Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("state signing secret not configured")
	}
	return &implManager{secret: []byte(secret)}, nil
}

type stateClaims struct {
	TelegramID string `json:"tid"`
	jwt.RegisteredClaims
}

// SignState issues a signed state token for the user, unique per call.
func (m *implManager) SignState(telegramID string) (string, error) {
	now := time.Now()
	claims := stateClaims{
		TelegramID: telegramID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign state: %w", err)
	}
	return signed, nil
}

// VerifyState validates a state token and returns the Telegram id it was
// issued for. Expired or tampered states fail.
func (m *implManager) VerifyState(state string) (string, error) {
	var claims stateClaims
	token, err := jwt.ParseWithClaims(state, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid state: %w", err)
	}
	if !token.Valid || claims.TelegramID == "" {
		return "", fmt.Errorf("invalid state: missing subject")
	}
	return claims.TelegramID, nil
}
