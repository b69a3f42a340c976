package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saaga0h/sundial/pkg/schedule"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "localhost", cfg.MQTTBroker)
	assert.Equal(t, 1883, cfg.MQTTPort)
	assert.Equal(t, "sundial-agent", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "07:00:00", cfg.SunriseTime)
	assert.Equal(t, "18:00:00", cfg.SunsetTime)
	assert.Equal(t, "1h30m", cfg.TransitionDuration)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SUNDIAL_MQTT_BROKER", "broker.lan")
	t.Setenv("SUNDIAL_MQTT_PORT", "8883")
	t.Setenv("SUNDIAL_SUNRISE", "06:15:00")
	t.Setenv("SUNDIAL_NIGHT_TEMPERATURE", "2700")
	t.Setenv("SUNDIAL_MIN_COMMAND_INTERVAL_MS", "2500")
	t.Setenv("SUNDIAL_MQTT_PASSWORD", "hunter2")

	cfg := NewConfig()
	cfg.LoadFromEnv()

	assert.Equal(t, "broker.lan", cfg.MQTTBroker)
	assert.Equal(t, 8883, cfg.MQTTPort)
	assert.Equal(t, "06:15:00", cfg.SunriseTime)
	assert.Equal(t, float64(2700), cfg.NightTemperature)
	assert.Equal(t, 2500, cfg.MinCommandIntervalMs)
	assert.Equal(t, "hunter2", cfg.MQTTPassword)
}

func TestLoadFromEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SUNDIAL_MQTT_PORT", "not-a-port")
	t.Setenv("SUNDIAL_DAY_BRIGHTNESS", "bright")

	cfg := NewConfig()
	cfg.LoadFromEnv()

	assert.Equal(t, 1883, cfg.MQTTPort)
	assert.Equal(t, 1.0, cfg.DayBrightness)
}

func TestScheduleFromInlineFields(t *testing.T) {
	cfg := NewConfig()

	s, err := cfg.Schedule()
	require.NoError(t, err)

	assert.Equal(t, schedule.At(7, 0, 0), s.SunriseTime)
	assert.Equal(t, schedule.At(18, 0, 0), s.SunsetTime)
	assert.Equal(t, 90*time.Minute, s.TransitionDuration)
	assert.Equal(t, schedule.ColorConfiguration{Temperature: 6600, Brightness: 1}, s.DayConfiguration)
	assert.Equal(t, schedule.ColorConfiguration{Temperature: 3600, Brightness: 0.85}, s.NightConfiguration)
}

func TestScheduleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	doc := `
sunrise: "06:30:00"
sunset: "20:00:00"
transition: "45m"
day:
  temperature: 5500
  brightness: 0.9
night:
  temperature: 2700
  brightness: 0.6
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := NewConfig()
	cfg.ScheduleFile = path

	s, err := cfg.Schedule()
	require.NoError(t, err)

	assert.Equal(t, schedule.At(6, 30, 0), s.SunriseTime)
	assert.Equal(t, schedule.At(20, 0, 0), s.SunsetTime)
	assert.Equal(t, 45*time.Minute, s.TransitionDuration)
	assert.Equal(t, schedule.ColorConfiguration{Temperature: 5500, Brightness: 0.9}, s.DayConfiguration)
	assert.Equal(t, schedule.ColorConfiguration{Temperature: 2700, Brightness: 0.6}, s.NightConfiguration)
}

func TestScheduleFileOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	doc := `
night:
  temperature: 2400
  brightness: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := NewConfig()
	cfg.ScheduleFile = path

	s, err := cfg.Schedule()
	require.NoError(t, err)

	// Inline defaults survive where the file is silent.
	assert.Equal(t, schedule.At(7, 0, 0), s.SunriseTime)
	assert.Equal(t, schedule.ColorConfiguration{Temperature: 6600, Brightness: 1}, s.DayConfiguration)
	assert.Equal(t, schedule.ColorConfiguration{Temperature: 2400, Brightness: 0.5}, s.NightConfiguration)
}

func TestScheduleFileMissing(t *testing.T) {
	cfg := NewConfig()
	cfg.ScheduleFile = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := cfg.Schedule()
	assert.Error(t, err)
}

func TestValidateRejectsOverlappingWindows(t *testing.T) {
	cfg := NewConfig()
	cfg.SunriseTime = "07:00:00"
	cfg.SunsetTime = "08:00:00"
	cfg.TransitionDuration = "1h"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := NewConfig()
	cfg.LogLevel = "verbose"

	assert.Error(t, cfg.Validate())
}

func TestAddressHelpers(t *testing.T) {
	cfg := NewConfig()
	cfg.MQTTBroker = "mqtt.lan"
	cfg.MQTTPort = 1884
	cfg.RedisHost = "redis.lan"
	cfg.RedisPort = 6380

	assert.Equal(t, "tcp://mqtt.lan:1884", cfg.MQTTAddress())
	assert.Equal(t, "redis.lan:6380", cfg.RedisAddress())
}
