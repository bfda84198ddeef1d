package repository

import (
	"errors"
	"time"
)

// Sentinel errors returned by repository implementations. Callers match on
// these rather than driver-specific failures.
var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
)

// GetOrCreateUserOptions identifies a chat user; DefaultTimezone is applied
// only on first creation.
type GetOrCreateUserOptions struct {
	TelegramID      string
	Email           string
	DefaultTimezone string
}

// UpdateUserTokenOptions stores a freshly linked Google credential.
type UpdateUserTokenOptions struct {
	TelegramID      string
	TokenCiphertext string
	GoogleSub       string
	Email           string
}

// CreateEventOptions holds all columns for a new mirrored event row.
type CreateEventOptions struct {
	UserID        int64
	TelegramID    string
	GoogleEventID string
	Title         string
	Description   string
	Location      string
	StartTime     time.Time
	EndTime       time.Time
	HTMLLink      string
}

// UpdateEventTimesOptions reschedules and/or retitles a mirrored event.
type UpdateEventTimesOptions struct {
	GoogleEventID string
	Title         string
	StartTime     time.Time
	EndTime       time.Time
}

// CreateReminderOptions schedules a notification for an event.
type CreateReminderOptions struct {
	UserID        int64
	GoogleEventID string
	ChatID        int64
	RemindAt      time.Time
}
