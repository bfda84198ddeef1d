package middleware

import "golang.org/x/time/rate"

// AllowChat reports whether the chat may issue another command now.
// Each chat gets its own token bucket.
func (m Middleware) AllowChat(chatID int64) bool {
	limiter, ok := m.limiters.Get(chatID)
	if !ok {
		limiter = rate.NewLimiter(m.limit, m.burst)
		m.limiters.Add(chatID, limiter)
	}
	return limiter.Allow()
}
