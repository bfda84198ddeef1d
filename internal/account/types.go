package account

// ConnectOutput carries the consent URL for the user to visit.
type ConnectOutput struct {
	AuthURL string
}

// CompleteLinkInput is the OAuth callback payload.
type CompleteLinkInput struct {
	State string
	Code  string
}

// CompleteLinkOutput identifies the linked account.
type CompleteLinkOutput struct {
	TelegramID string
	Email      string
}

// StatusOutput reports the user's link state and settings.
type StatusOutput struct {
	Linked   bool
	Email    string
	Timezone string
}
