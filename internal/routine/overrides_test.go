package routine

import (
	"testing"
	"time"
)

func TestOverrideSetAndClear(t *testing.T) {
	om := NewOverrideManager()

	if om.Active("office") {
		t.Error("no override set yet")
	}

	om.Set("office", 15*time.Minute)
	if !om.Active("office") {
		t.Error("override should be active after Set")
	}

	if !om.Clear("office") {
		t.Error("Clear should report the override existed")
	}
	if om.Active("office") {
		t.Error("override should be gone after Clear")
	}
	if om.Clear("office") {
		t.Error("second Clear should report nothing to clear")
	}
}

func TestOverrideExpiry(t *testing.T) {
	om := NewOverrideManager()

	om.Set("office", -time.Second)
	if om.Active("office") {
		t.Error("expired override should not be active")
	}
}

func TestOverrideActiveDisplays(t *testing.T) {
	om := NewOverrideManager()

	om.Set("office", 15*time.Minute)
	om.Set("bedroom", 15*time.Minute)
	om.Set("hallway", -time.Second)

	displays := om.ActiveDisplays()
	if len(displays) != 2 {
		t.Errorf("ActiveDisplays() returned %d displays, want 2", len(displays))
	}
}

func TestOverrideCleanupExpired(t *testing.T) {
	om := NewOverrideManager()

	om.Set("office", -time.Second)
	om.Set("bedroom", 15*time.Minute)

	if cleaned := om.CleanupExpired(); cleaned != 1 {
		t.Errorf("CleanupExpired() = %d, want 1", cleaned)
	}
	if !om.Active("bedroom") {
		t.Error("unexpired override should survive cleanup")
	}
}
