package usecase

import (
	"context"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/timeparse"
)

// userAndCalendar loads the chat user and builds their calendar client.
func (uc *implUseCase) userAndCalendar(ctx context.Context, sc model.Scope) (model.User, event.Calendar, error) {
	user, err := uc.repo.GetUserByTelegramID(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.GetUserByTelegramID: %v", err)
		return model.User{}, nil, err
	}
	if !user.Linked() {
		return model.User{}, nil, event.ErrNotLinked
	}

	cal, err := uc.calendars.ForUser(ctx, user)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.calendars.ForUser: %v", err)
		return model.User{}, nil, err
	}
	return user, cal, nil
}

// resolverForUser builds a time resolver in the user's timezone, falling
// back to the service default.
func (uc *implUseCase) resolverForUser(user model.User) (*timeparse.Resolver, error) {
	zone := user.Timezone
	if zone == "" {
		zone = uc.defaultTimezone
	}
	return timeparse.NewResolver(zone)
}

// firstMatch returns the first event whose title matches the query.
func (uc *implUseCase) firstMatch(ctx context.Context, sc model.Scope, query string) (model.Event, error) {
	matches, err := uc.repo.FindEvents(ctx, sc.UserID, query, 1)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.FindEvents: %v", err)
		return model.Event{}, err
	}
	if len(matches) == 0 {
		return model.Event{}, event.ErrEventNotFound
	}
	return matches[0], nil
}
