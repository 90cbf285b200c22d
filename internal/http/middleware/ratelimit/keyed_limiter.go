package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config stores KeyedLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // capacity (max tokens)
	TTL        time.Duration // delete idle clients (0 disables)
	MaxClients int           // maximum number of tracked clients (0 = unlimited)
}

// KeyedLimiter keeps one rate.Limiter per client key.
type KeyedLimiter struct {
	cfg         Config
	clock       Clock
	mu          sync.Mutex
	clients     map[string]*client
	lastCleanup time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter creates a limiter with explicit config and injected clock.
func NewKeyedLimiter(clock Clock, cfg Config) *KeyedLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxClients < 0 {
		cfg.MaxClients = 0
	}
	return &KeyedLimiter{
		cfg:     cfg,
		clock:   clock,
		clients: make(map[string]*client),
	}
}

// Allow reports whether key may proceed now. New keys are refused once
// MaxClients keys are tracked.
func (l *KeyedLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	l.maybeCleanup(now)
	c := l.clients[key]
	if c == nil {
		if l.cfg.MaxClients > 0 && len(l.clients) >= l.cfg.MaxClients {
			l.mu.Unlock()
			return false
		}
		c = &client{limiter: rate.NewLimiter(rate.Limit(l.cfg.Rate), l.cfg.Burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	lim := c.limiter
	l.mu.Unlock()

	return lim.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// maybeCleanup must be called with l.mu held.
func (l *KeyedLimiter) maybeCleanup(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}

	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}
	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < interval {
		return
	}
	l.lastCleanup = now

	for k, c := range l.clients {
		if now.Sub(c.lastSeen) > l.cfg.TTL {
			delete(l.clients, k)
		}
	}
}
