package api

import (
	"sync"

	"golang.org/x/time/rate"
)

// identityLimiter applies a token-bucket limit per authenticated identity.
// Buckets are kept for the life of the process; the identity space (student
// ids) is small enough that eviction is not worth the bookkeeping.
type identityLimiter struct {
	limiters sync.Map // student id -> *rate.Limiter
	rps      rate.Limit
	burst    int
}

func newIdentityLimiter(rps float64, burst int) *identityLimiter {
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 20
	}
	return &identityLimiter{rps: rate.Limit(rps), burst: burst}
}

func (l *identityLimiter) Allow(key string) bool {
	limiter, ok := l.limiters.Load(key)
	if !ok {
		limiter, _ = l.limiters.LoadOrStore(key, rate.NewLimiter(l.rps, l.burst))
	}
	return limiter.(*rate.Limiter).Allow()
}
