package usecase

import (
	"context"
	"strings"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/gcalendar"
)

// Update modifies the first event matching the query: a new time slot, a new
// title, or both.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (event.UpdateOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return event.UpdateOutput{}, event.ErrEmptyQuery
	}
	when := strings.TrimSpace(input.When)
	newTitle := strings.TrimSpace(input.NewTitle)
	if when == "" && newTitle == "" {
		return event.UpdateOutput{}, event.ErrNoUpdates
	}

	user, cal, err := uc.userAndCalendar(ctx, sc)
	if err != nil {
		return event.UpdateOutput{}, err
	}

	target, err := uc.firstMatch(ctx, sc, input.Query)
	if err != nil {
		return event.UpdateOutput{}, err
	}

	// Without a new time expression the current slot is retained.
	start, end := target.StartTime, target.EndTime
	patch := gcalendar.UpdateEventRequest{
		EventID: target.GoogleEventID,
		Summary: newTitle,
	}
	if when != "" {
		resolver, err := uc.resolverForUser(user)
		if err != nil {
			return event.UpdateOutput{}, err
		}
		rng, err := resolver.ResolveRange(when, uc.now())
		if err != nil {
			return event.UpdateOutput{}, err
		}
		start, end = rng.Start, rng.End
		patch.StartTime = start
		patch.EndTime = end
		patch.Timezone = resolver.Zone()
	}

	if _, err := cal.UpdateEvent(ctx, patch); err != nil {
		uc.l.Errorf(ctx, "event.usecase.Update.UpdateEvent: %v", err)
		return event.UpdateOutput{}, event.ErrCalendarSync
	}

	updated, err := uc.repo.UpdateEventTimes(ctx, repository.UpdateEventTimesOptions{
		GoogleEventID: target.GoogleEventID,
		Title:         newTitle,
		StartTime:     start,
		EndTime:       end,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Update.UpdateEventTimes: %v", err)
		return event.UpdateOutput{}, err
	}

	// Reschedule the reminder against the new start time.
	if when != "" {
		if err := uc.repo.DeleteRemindersForEvent(ctx, target.GoogleEventID); err != nil {
			uc.l.Warnf(ctx, "event.usecase.Update.DeleteRemindersForEvent: %v", err)
		}
		remindAt := start.Add(-uc.reminderLead)
		if remindAt.After(uc.now()) {
			if _, err := uc.repo.CreateReminder(ctx, repository.CreateReminderOptions{
				UserID:        user.ID,
				GoogleEventID: target.GoogleEventID,
				ChatID:        sc.ChatID,
				RemindAt:      remindAt,
			}); err != nil {
				uc.l.Warnf(ctx, "event.usecase.Update.CreateReminder: %v", err)
			}
		}
	}

	uc.l.Infof(ctx, "updated event %q (%s) for user %s", updated.Title, target.GoogleEventID, sc.UserID)
	return event.UpdateOutput{Event: updated}, nil
}

// Delete removes the first event matching the query everywhere.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input event.DeleteInput) (event.DeleteOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return event.DeleteOutput{}, event.ErrEmptyQuery
	}

	_, cal, err := uc.userAndCalendar(ctx, sc)
	if err != nil {
		return event.DeleteOutput{}, err
	}

	target, err := uc.firstMatch(ctx, sc, input.Query)
	if err != nil {
		return event.DeleteOutput{}, err
	}

	if err := cal.DeleteEvent(ctx, "", target.GoogleEventID); err != nil {
		uc.l.Errorf(ctx, "event.usecase.Delete.DeleteEvent: %v", err)
		return event.DeleteOutput{}, event.ErrCalendarSync
	}

	if err := uc.repo.DeleteEvent(ctx, target.GoogleEventID); err != nil {
		uc.l.Errorf(ctx, "event.usecase.Delete mirror: %v", err)
		return event.DeleteOutput{}, err
	}
	if err := uc.repo.DeleteRemindersForEvent(ctx, target.GoogleEventID); err != nil {
		uc.l.Warnf(ctx, "event.usecase.Delete.DeleteRemindersForEvent: %v", err)
	}

	uc.l.Infof(ctx, "deleted event %q (%s) for user %s", target.Title, target.GoogleEventID, sc.UserID)
	return event.DeleteOutput{Title: target.Title}, nil
}
