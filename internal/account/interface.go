package account

import (
	"context"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
)

// UseCase defines the business logic for Google account linking and
// per-user settings.
type UseCase interface {
	// Connect starts the OAuth consent flow and returns the URL the user
	// must visit. The URL carries a signed state bound to the user.
	Connect(ctx context.Context, sc model.Scope) (ConnectOutput, error)

	// CompleteLink finishes the OAuth flow: verifies the state, exchanges
	// the authorization code, and stores the sealed token.
	CompleteLink(ctx context.Context, input CompleteLinkInput) (CompleteLinkOutput, error)

	// Status reports whether the user has a linked account and their zone.
	Status(ctx context.Context, sc model.Scope) (StatusOutput, error)

	// SetTimezone validates and stores the user's IANA timezone.
	SetTimezone(ctx context.Context, sc model.Scope, zone string) error
}
