package model

import "time"

// MaxReminderRetries bounds delivery attempts for a single reminder.
const MaxReminderRetries = 3

// Reminder is a pending notification for an upcoming event.
type Reminder struct {
	ID            int64
	UserID        int64
	GoogleEventID string
	ChatID        int64
	RemindAt      time.Time
	Sent          bool
	Retries       int
}
