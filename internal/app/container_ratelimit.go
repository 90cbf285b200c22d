package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"vibe-shop/internal/config"
	"vibe-shop/internal/http/middleware/ratelimit"
	"vibe-shop/internal/logx"
)

// probes and pings are never limited
var rateLimitExempt = []string{"/health/live", "/healthcheck", "/ping"}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewKeyedLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxClients: rl.MaxClients,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

type rateLimitIn struct {
	dig.In
	Cfg     *config.Config
	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

// newRateLimitMiddleware returns nil when rate limiting is disabled.
func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	if !in.Cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(in.Logger, in.Counter, in.Limiter, rateLimitExempt...)
}
