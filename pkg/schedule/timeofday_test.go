package schedule

import (
	"testing"
	"time"
)

func TestAtNormalizes(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		min      int
		sec      int
		expected TimeOfDay
	}{
		{"midnight", 0, 0, 0, TimeOfDay(0)},
		{"plain afternoon", 14, 30, 0, TimeOfDay(14*time.Hour + 30*time.Minute)},
		{"wraps past 24h", 25, 0, 0, TimeOfDay(1 * time.Hour)},
		{"wraps negative", -1, 0, 0, TimeOfDay(23 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := At(tt.hour, tt.min, tt.sec)
			if result != tt.expected {
				t.Errorf("At(%d, %d, %d) = %s, want %s", tt.hour, tt.min, tt.sec, result, tt.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected TimeOfDay
		wantErr  bool
	}{
		{"07:00:00", At(7, 0, 0), false},
		{"23:59:59", At(23, 59, 59), false},
		{"00:00", At(0, 0, 0), false},
		{"18:30", At(18, 30, 0), false},
		{"24:00:00", 0, true},
		{"12:60:00", 0, true},
		{"12:00:61", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %s", tt.input, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestUntilWrapsMidnight(t *testing.T) {
	tests := []struct {
		name     string
		from     TimeOfDay
		to       TimeOfDay
		expected time.Duration
	}{
		{"forward same day", At(7, 0, 0), At(18, 0, 0), 11 * time.Hour},
		{"across midnight", At(23, 0, 0), At(1, 0, 0), 2 * time.Hour},
		{"same point", At(5, 0, 0), At(5, 0, 0), 0},
		{"backward goes the long way", At(18, 0, 0), At(7, 0, 0), 13 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.from.Until(tt.to)
			if result != tt.expected {
				t.Errorf("%s.Until(%s) = %s, want %s", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAddWraps(t *testing.T) {
	if got := At(23, 30, 0).Add(time.Hour); got != At(0, 30, 0) {
		t.Errorf("23:30 + 1h = %s, want 00:30:00", got)
	}
	if got := At(0, 30, 0).Add(-time.Hour); got != At(23, 30, 0) {
		t.Errorf("00:30 - 1h = %s, want 23:30:00", got)
	}
}

func TestTimeOfDayOfUsesInstantClock(t *testing.T) {
	utc := time.Date(2026, time.March, 14, 14, 15, 16, 0, time.UTC)
	if got := TimeOfDayOf(utc); got != At(14, 15, 16) {
		t.Errorf("TimeOfDayOf(%v) = %s, want 14:15:16", utc, got)
	}

	// The clock is read in the instant's own zone, not UTC.
	helsinki := time.FixedZone("EET", 2*3600)
	local := time.Date(2026, time.March, 14, 14, 15, 16, 0, helsinki)
	if got := TimeOfDayOf(local); got != At(14, 15, 16) {
		t.Errorf("TimeOfDayOf(%v) = %s, want 14:15:16", local, got)
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := At(7, 5, 9).String(); got != "07:05:09" {
		t.Errorf("String() = %s, want 07:05:09", got)
	}
}
