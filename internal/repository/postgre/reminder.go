package postgre

import (
	"context"
	"time"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	repo "github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
)

// CreateReminder schedules a notification row. The (event, remind_at) pair
// is unique; re-scheduling the same reminder is a no-op upsert.
func (r *implRepository) CreateReminder(ctx context.Context, opt repo.CreateReminderOptions) (model.Reminder, error) {
	const query = `
		INSERT INTO reminders (user_id, event_id, channel_id, remind_at, sent, retries)
		VALUES ($1, $2, $3, $4, FALSE, 0)
		ON CONFLICT (event_id, remind_at) DO UPDATE SET channel_id = EXCLUDED.channel_id
		RETURNING id, user_id, COALESCE(event_id, ''), channel_id, remind_at, sent, retries`

	var rem model.Reminder
	err := r.db.QueryRowContext(ctx, query, opt.UserID, opt.GoogleEventID, opt.ChatID, opt.RemindAt).Scan(
		&rem.ID, &rem.UserID, &rem.GoogleEventID, &rem.ChatID, &rem.RemindAt, &rem.Sent, &rem.Retries,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateReminder"), err)
		return model.Reminder{}, repo.ErrFailedToInsert
	}
	return rem, nil
}

// GetDueReminders returns unsent reminders whose remind_at has passed and
// that still have retries left.
func (r *implRepository) GetDueReminders(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	const query = `
		SELECT id, user_id, COALESCE(event_id, ''), channel_id, remind_at, sent, retries
		FROM reminders
		WHERE sent = FALSE AND remind_at <= $1 AND retries < $2
		ORDER BY remind_at ASC`

	rows, err := r.db.QueryContext(ctx, query, now, model.MaxReminderRetries)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetDueReminders"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var rem model.Reminder
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.GoogleEventID, &rem.ChatID, &rem.RemindAt, &rem.Sent, &rem.Retries); err != nil {
			return nil, repo.ErrFailedToList
		}
		reminders = append(reminders, rem)
	}
	if rows.Err() != nil {
		return nil, repo.ErrFailedToList
	}
	return reminders, nil
}

// MarkReminderSent flags a reminder as delivered.
func (r *implRepository) MarkReminderSent(ctx context.Context, id int64) error {
	const query = `UPDATE reminders SET sent = TRUE WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkReminderSent"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// IncrementReminderRetries bumps the retry counter after a failed delivery.
func (r *implRepository) IncrementReminderRetries(ctx context.Context, id int64) error {
	const query = `UPDATE reminders SET retries = retries + 1 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementReminderRetries"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteRemindersForEvent removes pending reminders when an event is deleted.
func (r *implRepository) DeleteRemindersForEvent(ctx context.Context, googleEventID string) error {
	const query = `DELETE FROM reminders WHERE event_id = $1`
	if _, err := r.db.ExecContext(ctx, query, googleEventID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRemindersForEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
