package repository

import (
	"context"
	"time"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
)

// Repository is the composed interface for the calendar agent data store.
type Repository interface {
	UserRepository
	EventRepository
	ReminderRepository
}

// UserRepository defines data access for chat users and their linked
// Google credentials.
type UserRepository interface {
	GetUserByTelegramID(ctx context.Context, telegramID string) (model.User, error)
	GetOrCreateUser(ctx context.Context, opt GetOrCreateUserOptions) (model.User, error)
	UpdateUserTimezone(ctx context.Context, telegramID string, timezone string) error
	UpdateUserToken(ctx context.Context, opt UpdateUserTokenOptions) error
}

// EventRepository defines data access for locally mirrored calendar events.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetEventByGoogleID(ctx context.Context, googleEventID string) (model.Event, error)
	ListUpcomingEvents(ctx context.Context, telegramID string, from time.Time, limit int) ([]model.Event, error)
	FindEvents(ctx context.Context, telegramID string, query string, limit int) ([]model.Event, error)
	UpdateEventTimes(ctx context.Context, opt UpdateEventTimesOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, googleEventID string) error
}

// ReminderRepository defines data access for pending reminders.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (model.Reminder, error)
	GetDueReminders(ctx context.Context, now time.Time) ([]model.Reminder, error)
	MarkReminderSent(ctx context.Context, id int64) error
	IncrementReminderRetries(ctx context.Context, id int64) error
	DeleteRemindersForEvent(ctx context.Context, googleEventID string) error
}
