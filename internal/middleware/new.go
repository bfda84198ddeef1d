package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/Rudra-Tiwari-codes/Calendar-test/config"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/log"
)

// limiterCacheSize bounds memory for per-chat limiters; evicted chats
// simply start with a fresh allowance.
const limiterCacheSize = 4096

// Middleware holds cross-cutting request policies.
type Middleware struct {
	l        log.Logger
	limiters *lru.Cache[int64, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// New creates the middleware set from the rate limit config.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	// lru.New errors only on a non-positive size; limiterCacheSize is a
	// positive constant.
	cache, _ := lru.New[int64, *rate.Limiter](limiterCacheSize)

	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 20
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	return Middleware{
		l:        l,
		limiters: cache,
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}
