package model

// User is a chat user with an optionally linked Google account.
// TokenCiphertext holds the encrypted OAuth token JSON; it is never stored
// or logged in the clear.
type User struct {
	ID              int64
	TelegramID      string
	Timezone        string
	Email           string
	GoogleSub       string
	TokenCiphertext string
}

// Linked reports whether the user completed Google account linking.
func (u User) Linked() bool {
	return u.TokenCiphertext != ""
}
