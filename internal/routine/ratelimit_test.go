package routine

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter()

	if !rl.Allow("office", 10*time.Second) {
		t.Error("first command should always be allowed")
	}
	if rl.Allow("office", 10*time.Second) {
		t.Error("second command inside the interval should be limited")
	}
	if !rl.Allow("bedroom", 10*time.Second) {
		t.Error("displays are limited independently")
	}
}

func TestRateLimiterAllowAfterInterval(t *testing.T) {
	rl := NewRateLimiter()

	rl.Allow("office", time.Minute)
	time.Sleep(2 * time.Millisecond)
	if !rl.Allow("office", time.Millisecond) {
		t.Error("command after the interval should be allowed")
	}
}

func TestRateLimiterRecord(t *testing.T) {
	rl := NewRateLimiter()

	if _, exists := rl.Last("office"); exists {
		t.Error("no command recorded yet")
	}

	rl.Record("office")
	if _, exists := rl.Last("office"); !exists {
		t.Error("Record should register a command time")
	}
	if rl.Allow("office", time.Minute) {
		t.Error("recorded command should start the interval")
	}
}
