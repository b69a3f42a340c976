package schedule

import "time"

// Phase identifies the region of the daily cycle an instant falls in.
type Phase string

const (
	PhaseDay     Phase = "day"
	PhaseNight   Phase = "night"
	PhaseSunrise Phase = "sunrise"
	PhaseSunset  Phase = "sunset"
)

// Evaluate returns the color configuration for an instant. It is a pure,
// total function: every instant maps to some value, plateau instants return
// the stored configuration unchanged, and transition instants follow a
// smoothstep ease between the two plateaus. Transition windows are closed
// intervals, so an instant landing exactly on a window boundary belongs to
// the transition; the curve is continuous there either way.
func (s Schedule) Evaluate(at time.Time) ColorConfiguration {
	phase, progress := s.Phase(at)
	switch phase {
	case PhaseSunrise:
		return blend(s.NightConfiguration, s.DayConfiguration, ease(progress))
	case PhaseSunset:
		return blend(s.DayConfiguration, s.NightConfiguration, ease(progress))
	case PhaseNight:
		return s.NightConfiguration
	default:
		return s.DayConfiguration
	}
}

// Phase classifies an instant on the 24h ring and, for the transition
// phases, reports how far through the window it is, in [0, 1]. The ring is
// unrolled at the start of the sunrise window so every membership test is a
// plain offset comparison; midnight needs no special case.
//
// On a schedule whose windows overlap (rejected by Validate) the sunrise
// window is checked first, which keeps the classification deterministic.
func (s Schedule) Phase(at time.Time) (Phase, float64) {
	window := 2 * s.TransitionDuration
	sunriseStart := s.SunriseTime.Add(-s.TransitionDuration)
	offset := sunriseStart.Until(TimeOfDayOf(at))

	// Relative to sunriseStart the sunset window begins one transition
	// half-width before sunset, i.e. exactly at the day length.
	dayLength := s.SunriseTime.Until(s.SunsetTime)

	switch {
	case offset <= window:
		return PhaseSunrise, progress(offset, window)
	case offset >= dayLength && offset <= dayLength+window:
		return PhaseSunset, progress(offset-dayLength, window)
	case offset < dayLength:
		return PhaseDay, 0
	default:
		return PhaseNight, 0
	}
}

// progress maps an offset into a window of the given width to [0, 1]. A
// zero-width window is an instantaneous switch: the single instant it
// contains counts as completed.
func progress(offset, width time.Duration) float64 {
	if width <= 0 {
		return 1
	}
	p := float64(offset) / float64(width)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ease is the smoothstep curve 3t^2 - 2t^3: monotone on [0, 1] with zero
// derivative at both endpoints, so a transition meets the flat plateaus
// without a slope break.
func ease(t float64) float64 {
	return t * t * (3 - 2*t)
}
