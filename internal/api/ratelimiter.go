package api

import (
	"golang.org/x/time/rate"

	"github.com/projectsentry/narrative-analyzer/internal/logger"
)

const defaultRPS = 10

// RateLimiter throttles detection runs. One run is cheap but unbounded
// request bodies are not; the limiter keeps a misbehaving caller from
// saturating the process.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  logger.Logger
}

// NewRateLimiter creates a limiter allowing rps runs per second with the
// given burst. Non-positive values fall back to defaults.
func NewRateLimiter(rps, burst int, log logger.Logger) *RateLimiter {
	if rps <= 0 {
		rps = defaultRPS
	}
	if burst <= 0 {
		burst = rps
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  log,
	}
}

// Allow reports whether a run may proceed now.
func (r *RateLimiter) Allow() bool {
	allowed := r.limiter.Allow()
	if !allowed {
		r.logger.Warn("detection run rejected by rate limiter")
	}
	return allowed
}
