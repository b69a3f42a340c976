package routine

import (
	"fmt"
	"math"
	"time"

	"github.com/saaga0h/sundial/pkg/schedule"
)

// Decision is one evaluated configuration for a display, together with the
// phase context the agent reports alongside it.
type Decision struct {
	Display     string
	At          time.Time
	Temperature float64
	Brightness  float64
	Phase       schedule.Phase
	Progress    float64
	Reason      string
}

// EvaluateSchedule produces the decision for a display at an instant. The
// schedule evaluation itself is pure; everything here is bookkeeping around
// its result.
func EvaluateSchedule(s schedule.Schedule, display string, at time.Time) *Decision {
	cfg := s.Evaluate(at)
	phase, progress := s.Phase(at)

	return &Decision{
		Display:     display,
		At:          at,
		Temperature: cfg.Temperature,
		Brightness:  cfg.Brightness,
		Phase:       phase,
		Progress:    progress,
		Reason:      decisionReason(phase, progress),
	}
}

// decisionReason builds the reason string published with each command
func decisionReason(phase schedule.Phase, progress float64) string {
	switch phase {
	case schedule.PhaseSunrise, schedule.PhaseSunset:
		return fmt.Sprintf("%s_transition_%d_percent", phase, int(math.Round(progress*100)))
	default:
		return fmt.Sprintf("%s_plateau", phase)
	}
}
