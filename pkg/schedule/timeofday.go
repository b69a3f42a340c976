package schedule

import (
	"fmt"
	"time"
)

// Day is the length of one full cycle on the time-of-day ring.
const Day = 24 * time.Hour

// TimeOfDay is an offset since local midnight, normalized into [0, 24h).
// All arithmetic wraps at midnight: the daily cycle is a ring, not a line
// with a break at 00:00.
type TimeOfDay time.Duration

// At returns the TimeOfDay for the given clock reading.
func At(hour, min, sec int) TimeOfDay {
	d := time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second
	return normalize(d)
}

// TimeOfDayOf extracts the time-of-day of an instant, read on the instant's
// own location clock. Calendar date and zone matter only for this extraction.
func TimeOfDayOf(t time.Time) TimeOfDay {
	hour, min, sec := t.Clock()
	d := time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(t.Nanosecond())
	return normalize(d)
}

// Parse parses a clock string in HH:MM or HH:MM:SS form.
func Parse(s string) (TimeOfDay, error) {
	var hour, min, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &hour, &min, &sec); err != nil {
		sec = 0
		if _, err := fmt.Sscanf(s, "%d:%d", &hour, &min); err != nil {
			return 0, fmt.Errorf("invalid time of day %q (want HH:MM or HH:MM:SS)", s)
		}
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return At(hour, min, sec), nil
}

// Add returns t shifted by d, wrapped on the ring. d may be negative.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return normalize(time.Duration(t) + d)
}

// Until returns the forward distance from t to u on the ring, in [0, 24h).
func (t TimeOfDay) Until(u TimeOfDay) time.Duration {
	return time.Duration(normalize(time.Duration(u) - time.Duration(t)))
}

// String formats the time of day as HH:MM:SS.
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d:%02d",
		d/time.Hour,
		(d%time.Hour)/time.Minute,
		(d%time.Minute)/time.Second)
}

// normalize reduces a duration into [0, 24h).
func normalize(d time.Duration) TimeOfDay {
	d %= Day
	if d < 0 {
		d += Day
	}
	return TimeOfDay(d)
}
