package middleware

import (
	"deadline-sync/pkg/log"
)

type Middleware struct {
	l           log.Logger
	internalKey string
	limiter     *rateLimiter
}

// New creates the HTTP middleware set. An empty internalKey disables the
// X-Internal-Key check.
func New(l log.Logger, internalKey string, rateLimitPerMin int) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
		limiter:     newRateLimiter(rateLimitPerMin),
	}
}
