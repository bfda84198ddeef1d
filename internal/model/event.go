package model

import "time"

// Event mirrors a Google Calendar event locally so list/find/delete work
// without extra round-trips and reminders can be scheduled against it.
type Event struct {
	ID            int64
	UserID        int64
	TelegramID    string
	GoogleEventID string
	Title         string
	Description   string
	Location      string
	StartTime     time.Time
	EndTime       time.Time
	HTMLLink      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
