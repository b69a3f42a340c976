package schedule

import (
	"fmt"
	"time"
)

// Schedule holds the five inputs to one evaluation: the sunrise and sunset
// anchors, the target configurations on either side of them, and the
// transition half-width. Each transition window spans from one
// TransitionDuration before its anchor to one after it, so the full window
// is twice the configured duration.
type Schedule struct {
	SunriseTime        TimeOfDay
	DayConfiguration   ColorConfiguration
	SunsetTime         TimeOfDay
	NightConfiguration ColorConfiguration
	TransitionDuration time.Duration
}

// Validate rejects schedules the evaluator cannot classify unambiguously:
// the sunrise and sunset windows must not overlap each other or wrap onto
// themselves. Rejection happens here, at configuration time; Evaluate itself
// never fails.
func (s Schedule) Validate() error {
	if s.TransitionDuration < 0 {
		return fmt.Errorf("transition duration must not be negative, got %s", s.TransitionDuration)
	}

	dayLength := s.SunriseTime.Until(s.SunsetTime)
	if dayLength == 0 {
		return fmt.Errorf("sunrise and sunset must differ, both are %s", s.SunriseTime)
	}
	nightLength := Day - dayLength

	if window := 2 * s.TransitionDuration; window >= dayLength || window >= nightLength {
		return fmt.Errorf("transition window %s does not fit between sunrise %s and sunset %s",
			window, s.SunriseTime, s.SunsetTime)
	}

	for _, side := range []struct {
		name string
		cfg  ColorConfiguration
	}{
		{"day", s.DayConfiguration},
		{"night", s.NightConfiguration},
	} {
		if side.cfg.Temperature <= 0 {
			return fmt.Errorf("%s temperature must be positive, got %.1f", side.name, side.cfg.Temperature)
		}
		if side.cfg.Brightness < 0 || side.cfg.Brightness > 1 {
			return fmt.Errorf("%s brightness must be within [0, 1], got %.2f", side.name, side.cfg.Brightness)
		}
	}

	return nil
}
