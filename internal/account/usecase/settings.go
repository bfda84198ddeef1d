package usecase

import (
	"context"
	"time"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/account"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
)

// Status reports the user's link state and configured timezone.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) (account.StatusOutput, error) {
	user, err := uc.repo.GetUserByTelegramID(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Status.GetUserByTelegramID: %v", err)
		return account.StatusOutput{}, err
	}

	out := account.StatusOutput{
		Linked:   user.Linked(),
		Email:    user.Email,
		Timezone: user.Timezone,
	}
	if out.Timezone == "" {
		out.Timezone = uc.defaultTimezone
	}
	return out, nil
}

// SetTimezone validates the zone against the IANA database and stores it.
func (uc *implUseCase) SetTimezone(ctx context.Context, sc model.Scope, zone string) error {
	if _, err := time.LoadLocation(zone); err != nil || zone == "" {
		return account.ErrInvalidTimezone
	}

	if _, err := uc.repo.GetOrCreateUser(ctx, repository.GetOrCreateUserOptions{
		TelegramID:      sc.UserID,
		DefaultTimezone: uc.defaultTimezone,
	}); err != nil {
		uc.l.Errorf(ctx, "account.usecase.SetTimezone.GetOrCreateUser: %v", err)
		return err
	}

	if err := uc.repo.UpdateUserTimezone(ctx, sc.UserID, zone); err != nil {
		uc.l.Errorf(ctx, "account.usecase.SetTimezone.UpdateUserTimezone: %v", err)
		return err
	}
	return nil
}
