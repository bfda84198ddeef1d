package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is an in-memory repository.Repository.
type mockRepo struct {
	users     map[string]model.User
	events    []model.Event
	reminders []model.Reminder

	nextEventID    int64
	nextReminderID int64

	getUserErr     error
	createEventErr error
	findErr        error
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: map[string]model.User{}}
}

func (m *mockRepo) GetUserByTelegramID(ctx context.Context, telegramID string) (model.User, error) {
	if m.getUserErr != nil {
		return model.User{}, m.getUserErr
	}
	return m.users[telegramID], nil
}

func (m *mockRepo) GetOrCreateUser(ctx context.Context, opt repository.GetOrCreateUserOptions) (model.User, error) {
	if u, ok := m.users[opt.TelegramID]; ok {
		return u, nil
	}
	u := model.User{
		ID:         int64(len(m.users) + 1),
		TelegramID: opt.TelegramID,
		Timezone:   opt.DefaultTimezone,
	}
	m.users[opt.TelegramID] = u
	return u, nil
}

func (m *mockRepo) UpdateUserTimezone(ctx context.Context, telegramID string, timezone string) error {
	u := m.users[telegramID]
	u.Timezone = timezone
	m.users[telegramID] = u
	return nil
}

func (m *mockRepo) UpdateUserToken(ctx context.Context, opt repository.UpdateUserTokenOptions) error {
	u := m.users[opt.TelegramID]
	u.TokenCiphertext = opt.TokenCiphertext
	u.GoogleSub = opt.GoogleSub
	u.Email = opt.Email
	m.users[opt.TelegramID] = u
	return nil
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	if m.createEventErr != nil {
		return model.Event{}, m.createEventErr
	}
	m.nextEventID++
	e := model.Event{
		ID:            m.nextEventID,
		UserID:        opt.UserID,
		TelegramID:    opt.TelegramID,
		GoogleEventID: opt.GoogleEventID,
		Title:         opt.Title,
		Description:   opt.Description,
		Location:      opt.Location,
		StartTime:     opt.StartTime,
		EndTime:       opt.EndTime,
		HTMLLink:      opt.HTMLLink,
	}
	m.events = append(m.events, e)
	return e, nil
}

func (m *mockRepo) GetEventByGoogleID(ctx context.Context, googleEventID string) (model.Event, error) {
	for _, e := range m.events {
		if e.GoogleEventID == googleEventID {
			return e, nil
		}
	}
	return model.Event{}, nil
}

func (m *mockRepo) ListUpcomingEvents(ctx context.Context, telegramID string, from time.Time, limit int) ([]model.Event, error) {
	var out []model.Event
	for _, e := range m.events {
		if e.TelegramID == telegramID && e.StartTime.After(from) {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockRepo) FindEvents(ctx context.Context, telegramID string, query string, limit int) ([]model.Event, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []model.Event
	for _, e := range m.events {
		if e.TelegramID == telegramID && containsFold(e.Title, query) {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateEventTimes(ctx context.Context, opt repository.UpdateEventTimesOptions) (model.Event, error) {
	for i, e := range m.events {
		if e.GoogleEventID == opt.GoogleEventID {
			m.events[i].StartTime = opt.StartTime
			m.events[i].EndTime = opt.EndTime
			if opt.Title != "" {
				m.events[i].Title = opt.Title
			}
			return m.events[i], nil
		}
	}
	return model.Event{}, repository.ErrFailedToUpdate
}

func (m *mockRepo) DeleteEvent(ctx context.Context, googleEventID string) error {
	for i, e := range m.events {
		if e.GoogleEventID == googleEventID {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockRepo) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (model.Reminder, error) {
	m.nextReminderID++
	r := model.Reminder{
		ID:            m.nextReminderID,
		UserID:        opt.UserID,
		GoogleEventID: opt.GoogleEventID,
		ChatID:        opt.ChatID,
		RemindAt:      opt.RemindAt,
	}
	m.reminders = append(m.reminders, r)
	return r, nil
}

func (m *mockRepo) GetDueReminders(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	var out []model.Reminder
	for _, r := range m.reminders {
		if !r.Sent && !r.RemindAt.After(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepo) MarkReminderSent(ctx context.Context, id int64) error {
	for i, r := range m.reminders {
		if r.ID == id {
			m.reminders[i].Sent = true
		}
	}
	return nil
}

func (m *mockRepo) IncrementReminderRetries(ctx context.Context, id int64) error {
	for i, r := range m.reminders {
		if r.ID == id {
			m.reminders[i].Retries++
		}
	}
	return nil
}

func (m *mockRepo) DeleteRemindersForEvent(ctx context.Context, googleEventID string) error {
	var kept []model.Reminder
	for _, r := range m.reminders {
		if r.GoogleEventID != googleEventID {
			kept = append(kept, r)
		}
	}
	m.reminders = kept
	return nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// mockCalendar records calls and returns canned results.
type mockCalendar struct {
	created   []gcalendar.CreateEventRequest
	updated   []gcalendar.UpdateEventRequest
	deleted   []string
	createErr error
	updateErr error
	deleteErr error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:        "gcal-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (m *mockCalendar) UpdateEvent(ctx context.Context, req gcalendar.UpdateEventRequest) (*gcalendar.Event, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.updated = append(m.updated, req)
	return &gcalendar.Event{ID: req.EventID, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

type mockCalendarFactory struct {
	cal *mockCalendar
	err error
}

func (m *mockCalendarFactory) ForUser(ctx context.Context, user model.User) (event.Calendar, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cal, nil
}
