package routine

import (
	"testing"
	"time"

	"github.com/saaga0h/sundial/pkg/schedule"
)

func referenceSchedule() schedule.Schedule {
	return schedule.Schedule{
		SunriseTime:        schedule.At(7, 0, 0),
		DayConfiguration:   schedule.ColorConfiguration{Temperature: 6600, Brightness: 1},
		SunsetTime:         schedule.At(18, 0, 0),
		NightConfiguration: schedule.ColorConfiguration{Temperature: 3600, Brightness: 0.85},
		TransitionDuration: 90 * time.Minute,
	}
}

func TestEvaluateSchedule(t *testing.T) {
	s := referenceSchedule()

	tests := []struct {
		name        string
		at          time.Time
		phase       schedule.Phase
		reason      string
		temperature float64
	}{
		{
			name:        "midday plateau",
			at:          time.Date(2026, time.March, 14, 14, 0, 0, 0, time.UTC),
			phase:       schedule.PhaseDay,
			reason:      "day_plateau",
			temperature: 6600,
		},
		{
			name:        "deep night plateau",
			at:          time.Date(2026, time.March, 14, 2, 0, 0, 0, time.UTC),
			phase:       schedule.PhaseNight,
			reason:      "night_plateau",
			temperature: 3600,
		},
		{
			name:        "sunrise midpoint",
			at:          time.Date(2026, time.March, 14, 7, 0, 0, 0, time.UTC),
			phase:       schedule.PhaseSunrise,
			reason:      "sunrise_transition_50_percent",
			temperature: 5100,
		},
		{
			name:        "sunset midpoint",
			at:          time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC),
			phase:       schedule.PhaseSunset,
			reason:      "sunset_transition_50_percent",
			temperature: 5100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := EvaluateSchedule(s, "office", tt.at)
			if decision.Display != "office" {
				t.Errorf("Display = %s, want office", decision.Display)
			}
			if decision.Phase != tt.phase {
				t.Errorf("Phase = %s, want %s", decision.Phase, tt.phase)
			}
			if decision.Reason != tt.reason {
				t.Errorf("Reason = %s, want %s", decision.Reason, tt.reason)
			}
			if decision.Temperature != tt.temperature {
				t.Errorf("Temperature = %.1f, want %.1f", decision.Temperature, tt.temperature)
			}
		})
	}
}
