package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/saaga0h/sundial/pkg/schedule"
)

// scheduleDocument is the YAML shape of a schedule file:
//
//	sunrise: "07:00:00"
//	sunset: "18:00:00"
//	transition: "1h30m"
//	day:
//	  temperature: 6600
//	  brightness: 1.0
//	night:
//	  temperature: 3600
//	  brightness: 0.85
//
// Every field is optional; omitted fields keep their inline/default value.
type scheduleDocument struct {
	Sunrise    string                `yaml:"sunrise"`
	Sunset     string                `yaml:"sunset"`
	Transition string                `yaml:"transition"`
	Day        configurationDocument `yaml:"day"`
	Night      configurationDocument `yaml:"night"`
}

type configurationDocument struct {
	Temperature float64 `yaml:"temperature"`
	Brightness  float64 `yaml:"brightness"`
}

// loadScheduleFile reads and parses a YAML schedule document
func loadScheduleFile(path string) (scheduleDocument, error) {
	var doc scheduleDocument

	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("failed to read schedule file: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse schedule YAML: %w", err)
	}

	return doc, nil
}

// merge layers a loaded document over the inline defaults. String fields win
// when non-empty; a day/night section wins when it names a temperature.
func (d scheduleDocument) merge(over scheduleDocument) scheduleDocument {
	out := d
	if over.Sunrise != "" {
		out.Sunrise = over.Sunrise
	}
	if over.Sunset != "" {
		out.Sunset = over.Sunset
	}
	if over.Transition != "" {
		out.Transition = over.Transition
	}
	if over.Day.Temperature != 0 {
		out.Day = over.Day
	}
	if over.Night.Temperature != 0 {
		out.Night = over.Night
	}
	return out
}

// build parses the document fields and assembles a validated schedule
func (d scheduleDocument) build() (schedule.Schedule, error) {
	var s schedule.Schedule

	sunrise, err := schedule.Parse(d.Sunrise)
	if err != nil {
		return s, fmt.Errorf("sunrise: %w", err)
	}
	sunset, err := schedule.Parse(d.Sunset)
	if err != nil {
		return s, fmt.Errorf("sunset: %w", err)
	}
	transition, err := time.ParseDuration(d.Transition)
	if err != nil {
		return s, fmt.Errorf("transition: %w", err)
	}

	s = schedule.Schedule{
		SunriseTime: sunrise,
		SunsetTime:  sunset,
		DayConfiguration: schedule.ColorConfiguration{
			Temperature: d.Day.Temperature,
			Brightness:  d.Day.Brightness,
		},
		NightConfiguration: schedule.ColorConfiguration{
			Temperature: d.Night.Temperature,
			Brightness:  d.Night.Brightness,
		},
		TransitionDuration: transition,
	}

	if err := s.Validate(); err != nil {
		return schedule.Schedule{}, err
	}
	return s, nil
}
