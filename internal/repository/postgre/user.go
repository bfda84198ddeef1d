package postgre

import (
	"context"
	"database/sql"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	repo "github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
)

// GetUserByTelegramID retrieves a user row by Telegram identifier.
// Returns zero-value User (ID == 0) when not found — do NOT return error for not-found.
func (r *implRepository) GetUserByTelegramID(ctx context.Context, telegramID string) (model.User, error) {
	const query = `
		SELECT id, telegram_id, COALESCE(tz, ''), COALESCE(email, ''), COALESCE(google_sub, ''), COALESCE(token_ciphertext, '')
		FROM users WHERE telegram_id = $1 LIMIT 1`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, telegramID).Scan(
		&u.ID, &u.TelegramID, &u.Timezone, &u.Email, &u.GoogleSub, &u.TokenCiphertext,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUserByTelegramID"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// GetOrCreateUser returns the existing user or inserts a fresh row with the
// configured default timezone.
func (r *implRepository) GetOrCreateUser(ctx context.Context, opt repo.GetOrCreateUserOptions) (model.User, error) {
	existing, err := r.GetUserByTelegramID(ctx, opt.TelegramID)
	if err != nil {
		return model.User{}, err
	}
	if existing.ID != 0 {
		return existing, nil
	}

	const query = `
		INSERT INTO users (telegram_id, tz, email)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (telegram_id) DO UPDATE SET telegram_id = EXCLUDED.telegram_id
		RETURNING id, telegram_id, COALESCE(tz, ''), COALESCE(email, ''), COALESCE(google_sub, ''), COALESCE(token_ciphertext, '')`

	var u model.User
	err = r.db.QueryRowContext(ctx, query, opt.TelegramID, opt.DefaultTimezone, opt.Email).Scan(
		&u.ID, &u.TelegramID, &u.Timezone, &u.Email, &u.GoogleSub, &u.TokenCiphertext,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrCreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// UpdateUserTimezone stores a validated IANA zone string for the user.
func (r *implRepository) UpdateUserTimezone(ctx context.Context, telegramID string, timezone string) error {
	const query = `UPDATE users SET tz = $1 WHERE telegram_id = $2`
	if _, err := r.db.ExecContext(ctx, query, timezone, telegramID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUserTimezone"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpdateUserToken stores the encrypted OAuth token after account linking.
func (r *implRepository) UpdateUserToken(ctx context.Context, opt repo.UpdateUserTokenOptions) error {
	const query = `
		UPDATE users
		SET token_ciphertext = $1, google_sub = $2, email = COALESCE(NULLIF($3, ''), email)
		WHERE telegram_id = $4`
	if _, err := r.db.ExecContext(ctx, query, opt.TokenCiphertext, opt.GoogleSub, opt.Email, opt.TelegramID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUserToken"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
