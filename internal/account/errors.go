package account

import "errors"

// Domain-specific errors for the account package.
var (
	ErrInvalidState     = errors.New("oauth state is invalid or expired")
	ErrExchangeFailed   = errors.New("failed to exchange authorization code")
	ErrNotLinked        = errors.New("no linked Google account")
	ErrInvalidTimezone  = errors.New("unknown timezone")
	ErrStoreCredentials = errors.New("failed to store credentials")
)
