package usecase

import (
	"context"
	"strings"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/gcalendar"
)

// Create resolves the time expression, creates the Google Calendar event,
// mirrors it, and schedules a reminder.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return event.CreateOutput{}, event.ErrEmptyTitle
	}
	if strings.TrimSpace(input.When) == "" {
		return event.CreateOutput{}, event.ErrEmptyWhen
	}

	user, cal, err := uc.userAndCalendar(ctx, sc)
	if err != nil {
		return event.CreateOutput{}, err
	}

	resolver, err := uc.resolverForUser(user)
	if err != nil {
		return event.CreateOutput{}, err
	}

	// The reference instant is sampled once so both halves of a range and
	// the past-occurrence check agree on "now".
	rng, err := resolver.ResolveRange(input.When, uc.now())
	if err != nil {
		return event.CreateOutput{}, err
	}

	created, err := cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   rng.Start,
		EndTime:     rng.End,
		Timezone:    resolver.Zone(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Create.CreateEvent: %v", err)
		return event.CreateOutput{}, event.ErrCalendarSync
	}

	mirrored, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		UserID:        user.ID,
		TelegramID:    user.TelegramID,
		GoogleEventID: created.ID,
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		StartTime:     rng.Start,
		EndTime:       rng.End,
		HTMLLink:      created.HtmlLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Create.CreateEvent mirror: %v", err)
		return event.CreateOutput{}, err
	}

	remindAt := rng.Start.Add(-uc.reminderLead)
	if remindAt.After(uc.now()) {
		if _, err := uc.repo.CreateReminder(ctx, repository.CreateReminderOptions{
			UserID:        user.ID,
			GoogleEventID: created.ID,
			ChatID:        sc.ChatID,
			RemindAt:      remindAt,
		}); err != nil {
			// The event itself succeeded; losing the reminder is not fatal.
			uc.l.Warnf(ctx, "event.usecase.Create.CreateReminder: %v", err)
		}
	}

	uc.l.Infof(ctx, "created event %q (%s) for user %s", input.Title, created.ID, sc.UserID)
	return event.CreateOutput{Event: mirrored}, nil
}
