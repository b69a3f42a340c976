package routine

import (
	"sync"
	"time"
)

// OverrideManager tracks manual overrides per display. While a display is
// overridden the agent acknowledges requests but publishes no commands, so a
// user adjustment is not fought by the schedule.
type OverrideManager struct {
	mu        sync.Mutex
	overrides map[string]time.Time
}

// NewOverrideManager creates a new override manager
func NewOverrideManager() *OverrideManager {
	return &OverrideManager{
		overrides: make(map[string]time.Time),
	}
}

// Set places a manual override on a display for the given duration and
// returns its expiry time.
func (om *OverrideManager) Set(display string, duration time.Duration) time.Time {
	om.mu.Lock()
	defer om.mu.Unlock()

	expiresAt := time.Now().Add(duration)
	om.overrides[display] = expiresAt
	return expiresAt
}

// Active reports whether a manual override is in effect for a display.
// Expired overrides are cleaned up on the way.
func (om *OverrideManager) Active(display string) bool {
	om.mu.Lock()
	defer om.mu.Unlock()

	expiresAt, exists := om.overrides[display]
	if !exists {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(om.overrides, display)
		return false
	}
	return true
}

// Clear removes a manual override for a display. Returns true if one was set.
func (om *OverrideManager) Clear(display string) bool {
	om.mu.Lock()
	defer om.mu.Unlock()

	if _, exists := om.overrides[display]; exists {
		delete(om.overrides, display)
		return true
	}
	return false
}

// ActiveDisplays returns all displays with an unexpired override
func (om *OverrideManager) ActiveDisplays() []string {
	om.mu.Lock()
	defer om.mu.Unlock()

	now := time.Now()
	displays := make([]string, 0, len(om.overrides))
	for display, expiresAt := range om.overrides {
		if now.Before(expiresAt) {
			displays = append(displays, display)
		}
	}
	return displays
}

// CleanupExpired removes all expired overrides and returns how many
func (om *OverrideManager) CleanupExpired() int {
	om.mu.Lock()
	defer om.mu.Unlock()

	now := time.Now()
	cleaned := 0
	for display, expiresAt := range om.overrides {
		if now.After(expiresAt) {
			delete(om.overrides, display)
			cleaned++
		}
	}
	return cleaned
}
