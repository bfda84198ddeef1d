package usecase

import (
	"context"
	"strings"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
)

const defaultListLimit = 10

// List returns the user's upcoming events from the local mirror.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	events, err := uc.repo.ListUpcomingEvents(ctx, sc.UserID, uc.now(), limit)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List.ListUpcomingEvents: %v", err)
		return event.ListOutput{}, err
	}
	return event.ListOutput{Events: events}, nil
}

// Find searches the user's events by title substring.
func (uc *implUseCase) Find(ctx context.Context, sc model.Scope, input event.FindInput) (event.FindOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return event.FindOutput{}, event.ErrEmptyQuery
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	events, err := uc.repo.FindEvents(ctx, sc.UserID, input.Query, limit)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Find.FindEvents: %v", err)
		return event.FindOutput{}, err
	}
	return event.FindOutput{Events: events}, nil
}
