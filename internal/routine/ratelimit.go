package routine

import (
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between published commands per
// display, so a burst of requests for the same display collapses into one
// command.
type RateLimiter struct {
	mu          sync.Mutex
	lastCommand map[string]time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		lastCommand: make(map[string]time.Time),
	}
}

// Allow checks if enough time has passed since the last command for the
// display and records the command when it has.
func (rl *RateLimiter) Allow(display string, minInterval time.Duration) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	last, exists := rl.lastCommand[display]
	if exists && time.Since(last) < minInterval {
		return false
	}

	rl.lastCommand[display] = time.Now()
	return true
}

// Record marks a command as sent for a display without checking the
// interval. Used when bypassing rate limiting.
func (rl *RateLimiter) Record(display string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lastCommand[display] = time.Now()
}

// Last returns the last command time for a display
func (rl *RateLimiter) Last(display string) (time.Time, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	last, exists := rl.lastCommand[display]
	return last, exists
}
