package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/timeparse"
)

func melbourneNow(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	// Friday afternoon.
	return time.Date(2025, 9, 26, 14, 0, 0, 0, loc)
}

func newTestUseCase(t *testing.T, repo *mockRepo, cal *mockCalendar) *implUseCase {
	t.Helper()
	uc := New(&mockLogger{}, repo, &mockCalendarFactory{cal: cal}, "Australia/Melbourne", 30*time.Minute)
	now := melbourneNow(t)
	uc.now = func() time.Time { return now }
	return uc
}

func linkedUser(repo *mockRepo, telegramID string) model.User {
	u := model.User{
		ID:              1,
		TelegramID:      telegramID,
		Timezone:        "Australia/Melbourne",
		TokenCiphertext: "sealed-token",
	}
	repo.users[telegramID] = u
	return u
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "telegram_42", ChatID: 42}

	t.Run("Success", func(t *testing.T) {
		repo := newMockRepo()
		cal := &mockCalendar{}
		linkedUser(repo, sc.UserID)
		uc := newTestUseCase(t, repo, cal)

		out, err := uc.Create(ctx, sc, event.CreateInput{
			Title: "Team sync",
			When:  "tomorrow 3pm to 5pm",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2025, 9, 27, 15, 0, 0, 0, melbourneNow(t).Location())
		if !out.Event.StartTime.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, out.Event.StartTime)
		}
		if !out.Event.EndTime.Equal(wantStart.Add(2 * time.Hour)) {
			t.Errorf("expected 2h duration, got end %v", out.Event.EndTime)
		}
		if len(cal.created) != 1 {
			t.Fatalf("expected 1 calendar create, got %d", len(cal.created))
		}
		if cal.created[0].Timezone != "Australia/Melbourne" {
			t.Errorf("expected IANA zone on calendar request, got %q", cal.created[0].Timezone)
		}
		if out.Event.GoogleEventID != "gcal-1" {
			t.Errorf("expected mirrored google id, got %q", out.Event.GoogleEventID)
		}
	})

	t.Run("Reminder scheduled before start", func(t *testing.T) {
		repo := newMockRepo()
		cal := &mockCalendar{}
		linkedUser(repo, sc.UserID)
		uc := newTestUseCase(t, repo, cal)

		if _, err := uc.Create(ctx, sc, event.CreateInput{Title: "Standup", When: "monday 9am"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.reminders) != 1 {
			t.Fatalf("expected 1 reminder, got %d", len(repo.reminders))
		}
		r := repo.reminders[0]
		wantRemind := time.Date(2025, 9, 29, 8, 30, 0, 0, melbourneNow(t).Location())
		if !r.RemindAt.Equal(wantRemind) {
			t.Errorf("expected reminder at %v, got %v", wantRemind, r.RemindAt)
		}
		if r.ChatID != sc.ChatID {
			t.Errorf("expected reminder chat %d, got %d", sc.ChatID, r.ChatID)
		}
	})

	t.Run("Default one hour duration", func(t *testing.T) {
		repo := newMockRepo()
		cal := &mockCalendar{}
		linkedUser(repo, sc.UserID)
		uc := newTestUseCase(t, repo, cal)

		out, err := uc.Create(ctx, sc, event.CreateInput{Title: "Dentist", When: "tomorrow 3pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := out.Event.EndTime.Sub(out.Event.StartTime); got != time.Hour {
			t.Errorf("expected 1h default duration, got %v", got)
		}
	})

	t.Run("Empty title", func(t *testing.T) {
		repo := newMockRepo()
		linkedUser(repo, sc.UserID)
		uc := newTestUseCase(t, repo, &mockCalendar{})

		_, err := uc.Create(ctx, sc, event.CreateInput{Title: "  ", When: "tomorrow 3pm"})
		if !errors.Is(err, event.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Not linked", func(t *testing.T) {
		repo := newMockRepo()
		repo.users[sc.UserID] = model.User{ID: 1, TelegramID: sc.UserID}
		uc := newTestUseCase(t, repo, &mockCalendar{})

		_, err := uc.Create(ctx, sc, event.CreateInput{Title: "Lunch", When: "tomorrow 1pm"})
		if !errors.Is(err, event.ErrNotLinked) {
			t.Errorf("expected ErrNotLinked, got %v", err)
		}
	})

	t.Run("Unparseable expression surfaces snippet", func(t *testing.T) {
		repo := newMockRepo()
		linkedUser(repo, sc.UserID)
		uc := newTestUseCase(t, repo, &mockCalendar{})

		_, err := uc.Create(ctx, sc, event.CreateInput{Title: "Lunch", When: "gibberish xyzzy"})
		var parseErr *timeparse.UnparseableExpressionError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected UnparseableExpressionError, got %v", err)
		}
		if parseErr.Snippet != "gibberish xyzzy" {
			t.Errorf("expected snippet preserved, got %q", parseErr.Snippet)
		}
	})

	t.Run("Calendar failure does not mirror", func(t *testing.T) {
		repo := newMockRepo()
		cal := &mockCalendar{createErr: errors.New("api down")}
		linkedUser(repo, sc.UserID)
		uc := newTestUseCase(t, repo, cal)

		_, err := uc.Create(ctx, sc, event.CreateInput{Title: "Lunch", When: "tomorrow 1pm"})
		if !errors.Is(err, event.ErrCalendarSync) {
			t.Errorf("expected ErrCalendarSync, got %v", err)
		}
		if len(repo.events) != 0 {
			t.Errorf("expected no mirrored rows after calendar failure, got %d", len(repo.events))
		}
	})
}
