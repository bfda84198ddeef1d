package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	repo "github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
)

const eventColumns = `id, user_id, telegram_id, google_event_id, title, COALESCE(description, ''), COALESCE(location, ''), start_time, end_time, COALESCE(google_calendar_link, ''), created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID, &e.UserID, &e.TelegramID, &e.GoogleEventID, &e.Title, &e.Description,
		&e.Location, &e.StartTime, &e.EndTime, &e.HTMLLink, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// CreateEvent inserts a mirrored calendar event row.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (user_id, telegram_id, google_event_id, title, description, location, start_time, end_time, google_calendar_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, NULLIF($9, ''), NOW(), NOW())
		RETURNING ` + eventColumns

	e, err := scanEvent(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.TelegramID, opt.GoogleEventID, opt.Title, opt.Description,
		opt.Location, opt.StartTime, opt.EndTime, opt.HTMLLink,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetEventByGoogleID retrieves a single event by its Google event id.
// Returns zero-value Event (ID == 0) when not found.
func (r *implRepository) GetEventByGoogleID(ctx context.Context, googleEventID string) (model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE google_event_id = $1 LIMIT 1`

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, googleEventID))
	if err == sql.ErrNoRows {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetEventByGoogleID"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListUpcomingEvents returns a user's events starting at or after from,
// ordered by start time.
func (r *implRepository) ListUpcomingEvents(ctx context.Context, telegramID string, from time.Time, limit int) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE telegram_id = $1 AND start_time >= $2
		ORDER BY start_time ASC LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, telegramID, from, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUpcomingEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	return collectEvents(rows)
}

// FindEvents searches a user's events by case-insensitive substring match on
// title and description.
func (r *implRepository) FindEvents(ctx context.Context, telegramID string, q string, limit int) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE telegram_id = $1 AND (title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		ORDER BY start_time ASC LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, telegramID, q, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	return collectEvents(rows)
}

// UpdateEventTimes reschedules (and optionally retitles) a mirrored event.
func (r *implRepository) UpdateEventTimes(ctx context.Context, opt repo.UpdateEventTimesOptions) (model.Event, error) {
	const query = `
		UPDATE events
		SET title = COALESCE(NULLIF($1, ''), title), start_time = $2, end_time = $3, updated_at = NOW()
		WHERE google_event_id = $4
		RETURNING ` + eventColumns

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, opt.Title, opt.StartTime, opt.EndTime, opt.GoogleEventID))
	if err == sql.ErrNoRows {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEventTimes"), err)
		return model.Event{}, repo.ErrFailedToUpdate
	}
	return e, nil
}

// DeleteEvent removes a mirrored event row by Google event id.
func (r *implRepository) DeleteEvent(ctx context.Context, googleEventID string) error {
	const query = `DELETE FROM events WHERE google_event_id = $1`
	if _, err := r.db.ExecContext(ctx, query, googleEventID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func collectEvents(rows *sql.Rows) ([]model.Event, error) {
	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	if rows.Err() != nil {
		return nil, repo.ErrFailedToList
	}
	return events, nil
}
