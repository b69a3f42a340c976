package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/saaga0h/sundial/pkg/schedule"
)

// Config holds the configuration for a Sundial agent
type Config struct {
	// MQTT configuration
	MQTTBroker   string
	MQTTPort     int
	MQTTUser     string
	MQTTPassword string
	MQTTClientID string

	// Redis configuration
	RedisHost     string
	RedisPort     int
	RedisPassword string
	RedisDB       int

	// Service configuration
	ServiceName string
	HealthPort  int
	LogLevel    string

	// Schedule configuration. ScheduleFile points at an optional YAML
	// document; the inline fields below act as defaults when the file is
	// absent or leaves a field out.
	ScheduleFile       string
	SunriseTime        string
	SunsetTime         string
	TransitionDuration string
	DayTemperature     float64
	DayBrightness      float64
	NightTemperature   float64
	NightBrightness    float64

	// Agent configuration
	MinCommandIntervalMs  int
	ManualOverrideMinutes int
	StateTTLMinutes       int
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		MQTTBroker:    "localhost",
		MQTTPort:      1883,
		MQTTUser:      "",
		MQTTPassword:  "",
		MQTTClientID:  "",
		RedisHost:     "localhost",
		RedisPort:     6379,
		RedisPassword: "",
		RedisDB:       0,
		ServiceName:   "sundial-agent",
		HealthPort:    8080,
		LogLevel:      "info",
		// Schedule defaults: cool bright days, warm dim nights
		ScheduleFile:       "",
		SunriseTime:        "07:00:00",
		SunsetTime:         "18:00:00",
		TransitionDuration: "1h30m",
		DayTemperature:     6600,
		DayBrightness:      1.0,
		NightTemperature:   3600,
		NightBrightness:    0.85,
		// Agent defaults
		MinCommandIntervalMs:  10000,
		ManualOverrideMinutes: 30,
		StateTTLMinutes:       60,
	}
}

// LoadFromEnv loads configuration from environment variables with SUNDIAL_ prefix
func (c *Config) LoadFromEnv() {
	// MQTT configuration
	if v := os.Getenv("SUNDIAL_MQTT_BROKER"); v != "" {
		c.MQTTBroker = v
	}
	if v := os.Getenv("SUNDIAL_MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.MQTTPort = port
		}
	}
	if v := os.Getenv("SUNDIAL_MQTT_USER"); v != "" {
		c.MQTTUser = v
	}
	if v := os.Getenv("SUNDIAL_MQTT_PASSWORD"); v != "" {
		c.MQTTPassword = v
	}
	if v := os.Getenv("SUNDIAL_MQTT_CLIENT_ID"); v != "" {
		c.MQTTClientID = v
	}

	// Redis configuration
	if v := os.Getenv("SUNDIAL_REDIS_HOST"); v != "" {
		c.RedisHost = v
	}
	if v := os.Getenv("SUNDIAL_REDIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.RedisPort = port
		}
	}
	if v := os.Getenv("SUNDIAL_REDIS_PASSWORD"); v != "" {
		c.RedisPassword = v
	}
	if v := os.Getenv("SUNDIAL_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.RedisDB = db
		}
	}

	// Service configuration
	if v := os.Getenv("SUNDIAL_SERVICE_NAME"); v != "" {
		c.ServiceName = v
	}
	if v := os.Getenv("SUNDIAL_HEALTH_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.HealthPort = port
		}
	}
	if v := os.Getenv("SUNDIAL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	// Schedule configuration
	if v := os.Getenv("SUNDIAL_SCHEDULE_FILE"); v != "" {
		c.ScheduleFile = v
	}
	if v := os.Getenv("SUNDIAL_SUNRISE"); v != "" {
		c.SunriseTime = v
	}
	if v := os.Getenv("SUNDIAL_SUNSET"); v != "" {
		c.SunsetTime = v
	}
	if v := os.Getenv("SUNDIAL_TRANSITION"); v != "" {
		c.TransitionDuration = v
	}
	if v := os.Getenv("SUNDIAL_DAY_TEMPERATURE"); v != "" {
		if temp, err := strconv.ParseFloat(v, 64); err == nil {
			c.DayTemperature = temp
		}
	}
	if v := os.Getenv("SUNDIAL_DAY_BRIGHTNESS"); v != "" {
		if b, err := strconv.ParseFloat(v, 64); err == nil {
			c.DayBrightness = b
		}
	}
	if v := os.Getenv("SUNDIAL_NIGHT_TEMPERATURE"); v != "" {
		if temp, err := strconv.ParseFloat(v, 64); err == nil {
			c.NightTemperature = temp
		}
	}
	if v := os.Getenv("SUNDIAL_NIGHT_BRIGHTNESS"); v != "" {
		if b, err := strconv.ParseFloat(v, 64); err == nil {
			c.NightBrightness = b
		}
	}

	// Agent configuration
	if v := os.Getenv("SUNDIAL_MIN_COMMAND_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.MinCommandIntervalMs = ms
		}
	}
	if v := os.Getenv("SUNDIAL_MANUAL_OVERRIDE_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			c.ManualOverrideMinutes = minutes
		}
	}
	if v := os.Getenv("SUNDIAL_STATE_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			c.StateTTLMinutes = minutes
		}
	}
}

// LoadFromFlags parses command-line flags and overrides config values
func (c *Config) LoadFromFlags() {
	// MQTT flags
	pflag.StringVar(&c.MQTTBroker, "mqtt-broker", c.MQTTBroker, "MQTT broker hostname")
	pflag.IntVar(&c.MQTTPort, "mqtt-port", c.MQTTPort, "MQTT broker port")
	pflag.StringVar(&c.MQTTUser, "mqtt-user", c.MQTTUser, "MQTT username")
	pflag.StringVar(&c.MQTTPassword, "mqtt-password", c.MQTTPassword, "MQTT password")
	pflag.StringVar(&c.MQTTClientID, "mqtt-client-id", c.MQTTClientID, "MQTT client ID")

	// Redis flags
	pflag.StringVar(&c.RedisHost, "redis-host", c.RedisHost, "Redis hostname")
	pflag.IntVar(&c.RedisPort, "redis-port", c.RedisPort, "Redis port")
	pflag.StringVar(&c.RedisPassword, "redis-password", c.RedisPassword, "Redis password")
	pflag.IntVar(&c.RedisDB, "redis-db", c.RedisDB, "Redis database number")

	// Service flags
	pflag.StringVar(&c.ServiceName, "service-name", c.ServiceName, "Service name")
	pflag.IntVar(&c.HealthPort, "health-port", c.HealthPort, "Health check HTTP port")
	pflag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")

	// Schedule flags
	pflag.StringVar(&c.ScheduleFile, "schedule-file", c.ScheduleFile, "Path to YAML schedule file")
	pflag.StringVar(&c.SunriseTime, "sunrise", c.SunriseTime, "Sunrise time of day (HH:MM:SS)")
	pflag.StringVar(&c.SunsetTime, "sunset", c.SunsetTime, "Sunset time of day (HH:MM:SS)")
	pflag.StringVar(&c.TransitionDuration, "transition", c.TransitionDuration, "Transition half-width (Go duration, e.g. 1h30m)")
	pflag.Float64Var(&c.DayTemperature, "day-temperature", c.DayTemperature, "Daytime color temperature in Kelvin")
	pflag.Float64Var(&c.DayBrightness, "day-brightness", c.DayBrightness, "Daytime brightness (0-1)")
	pflag.Float64Var(&c.NightTemperature, "night-temperature", c.NightTemperature, "Nighttime color temperature in Kelvin")
	pflag.Float64Var(&c.NightBrightness, "night-brightness", c.NightBrightness, "Nighttime brightness (0-1)")

	// Agent flags
	pflag.IntVar(&c.MinCommandIntervalMs, "min-command-interval-ms", c.MinCommandIntervalMs, "Minimum time between published commands per display (ms)")
	pflag.IntVar(&c.ManualOverrideMinutes, "manual-override-minutes", c.ManualOverrideMinutes, "Manual override duration in minutes")
	pflag.IntVar(&c.StateTTLMinutes, "state-ttl-minutes", c.StateTTLMinutes, "TTL for state snapshots in Redis (minutes)")

	pflag.Parse()
}

// Validate checks that required configuration values are set and that the
// configured schedule is well formed. Schedules the evaluator cannot
// classify unambiguously are rejected here, before any agent starts.
func (c *Config) Validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT broker is required")
	}
	if c.MQTTPort <= 0 || c.MQTTPort > 65535 {
		return fmt.Errorf("MQTT port must be between 1 and 65535")
	}
	if c.RedisHost == "" {
		return fmt.Errorf("Redis host is required")
	}
	if c.RedisPort <= 0 || c.RedisPort > 65535 {
		return fmt.Errorf("Redis port must be between 1 and 65535")
	}
	if c.HealthPort <= 0 || c.HealthPort > 65535 {
		return fmt.Errorf("Health port must be between 1 and 65535")
	}
	if c.ServiceName == "" {
		return fmt.Errorf("Service name is required")
	}
	if c.MinCommandIntervalMs < 0 {
		return fmt.Errorf("minimum command interval must not be negative")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if _, err := c.Schedule(); err != nil {
		return fmt.Errorf("invalid schedule: %w", err)
	}

	return nil
}

// Schedule assembles and validates the evaluation schedule from the inline
// fields, with the YAML schedule file (when configured) layered on top.
func (c *Config) Schedule() (schedule.Schedule, error) {
	inline := scheduleDocument{
		Sunrise:    c.SunriseTime,
		Sunset:     c.SunsetTime,
		Transition: c.TransitionDuration,
		Day:        configurationDocument{Temperature: c.DayTemperature, Brightness: c.DayBrightness},
		Night:      configurationDocument{Temperature: c.NightTemperature, Brightness: c.NightBrightness},
	}

	doc := inline
	if c.ScheduleFile != "" {
		loaded, err := loadScheduleFile(c.ScheduleFile)
		if err != nil {
			return schedule.Schedule{}, err
		}
		doc = inline.merge(loaded)
	}

	return doc.build()
}

// MQTTAddress returns the full MQTT broker address
func (c *Config) MQTTAddress() string {
	return fmt.Sprintf("tcp://%s:%d", c.MQTTBroker, c.MQTTPort)
}

// RedisAddress returns the full Redis address
func (c *Config) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// MinCommandInterval returns the per-display command rate limit as a duration
func (c *Config) MinCommandInterval() time.Duration {
	return time.Duration(c.MinCommandIntervalMs) * time.Millisecond
}

// StateTTL returns the Redis snapshot TTL as a duration
func (c *Config) StateTTL() time.Duration {
	return time.Duration(c.StateTTLMinutes) * time.Minute
}
