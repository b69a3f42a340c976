package routine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saaga0h/sundial/pkg/config"
	"github.com/saaga0h/sundial/pkg/mqtt"
	"github.com/saaga0h/sundial/pkg/redis"
	"github.com/saaga0h/sundial/pkg/schedule"
)

// Agent evaluates the color schedule on demand and publishes the result.
// It owns no timer: external schedulers drive it by publishing request
// messages, and downstream display controllers apply the commands it emits.
type Agent struct {
	mqtt     mqtt.Client
	redis    redis.Client
	cfg      *config.Config
	logger   *slog.Logger
	schedule schedule.Schedule
	storage  *Storage

	overrideManager *OverrideManager
	rateLimiter     *RateLimiter
}

// NewAgent creates a new color temperature agent. The schedule must already
// be validated by the configuration layer.
func NewAgent(mqttClient mqtt.Client, redisClient redis.Client, cfg *config.Config, sched schedule.Schedule, logger *slog.Logger) *Agent {
	return &Agent{
		mqtt:            mqttClient,
		redis:           redisClient,
		cfg:             cfg,
		logger:          logger,
		schedule:        sched,
		storage:         NewStorage(redisClient, cfg.StateTTL(), logger),
		overrideManager: NewOverrideManager(),
		rateLimiter:     NewRateLimiter(),
	}
}

// Start connects the agent to its transport and begins processing requests.
// Blocks until the context is cancelled.
func (a *Agent) Start(ctx context.Context) error {
	a.logger.Info("Starting color temperature agent",
		"service_name", a.cfg.ServiceName,
		"sunrise", a.schedule.SunriseTime.String(),
		"sunset", a.schedule.SunsetTime.String(),
		"transition", a.schedule.TransitionDuration.String(),
		"min_command_interval_ms", a.cfg.MinCommandIntervalMs)

	if err := a.mqtt.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to MQTT: %w", err)
	}

	if err := a.redis.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}

	if err := a.mqtt.Subscribe(mqtt.TopicRequests, 0, a.handleRequestMessage); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", mqtt.TopicRequests, err)
	}

	if err := a.mqtt.Subscribe(mqtt.TopicOverrides, 0, a.handleOverrideMessage); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", mqtt.TopicOverrides, err)
	}

	a.logger.Info("Color temperature agent started and ready")

	<-ctx.Done()
	a.logger.Info("Color temperature agent stopping")

	return nil
}

// Stop gracefully stops the agent
func (a *Agent) Stop() error {
	a.logger.Info("Stopping color temperature agent")

	a.mqtt.Disconnect()

	if err := a.redis.Close(); err != nil {
		a.logger.Error("Error closing Redis connection", "error", err)
		return err
	}

	a.logger.Info("Color temperature agent stopped")
	return nil
}

// handleRequestMessage handles an evaluation request for a display.
// Payload (all fields optional):
//
//	{"request_id": "...", "at": "2026-03-14T19:00:00+02:00", "force": false}
//
// An absent "at" evaluates at the current instant.
func (a *Agent) handleRequestMessage(msg mqtt.Message) {
	display := mqtt.DisplayFromTopic(msg.Topic())
	if display == "" {
		a.logger.Warn("Invalid request topic format", "topic", msg.Topic())
		return
	}

	var request struct {
		RequestID string `json:"request_id"`
		At        string `json:"at"`
		Force     bool   `json:"force"`
	}
	if len(msg.Payload()) > 0 {
		if err := json.Unmarshal(msg.Payload(), &request); err != nil {
			a.logger.Error("Failed to parse request message",
				"display", display,
				"error", err)
			return
		}
	}

	at := time.Now()
	if request.At != "" {
		parsed, err := time.Parse(time.RFC3339, request.At)
		if err != nil {
			a.logger.Error("Failed to parse request instant",
				"display", display,
				"at", request.At,
				"error", err)
			return
		}
		at = parsed
	}

	if request.RequestID == "" {
		request.RequestID = uuid.NewString()
	}

	a.logger.Debug("Received evaluation request",
		"display", display,
		"request_id", request.RequestID,
		"at", at.Format(time.RFC3339))

	if a.overrideManager.Active(display) {
		a.logger.Debug("Manual override active, no command published",
			"display", display,
			"request_id", request.RequestID)
		return
	}

	if !request.Force && !a.rateLimiter.Allow(display, a.cfg.MinCommandInterval()) {
		a.logger.Debug("Rate limited, skipping request",
			"display", display,
			"min_interval_ms", a.cfg.MinCommandIntervalMs)
		return
	}
	if request.Force {
		a.rateLimiter.Record(display)
	}

	decision := EvaluateSchedule(a.schedule, display, at)

	if err := a.publishDecision(decision, request.RequestID); err != nil {
		a.logger.Error("Failed to publish decision",
			"display", display,
			"error", err)
		return
	}

	// Snapshot failures are logged but do not fail the request; the command
	// already went out.
	if err := a.storage.StoreDecision(context.Background(), decision); err != nil {
		a.logger.Error("Failed to store decision snapshot",
			"display", display,
			"error", err)
	}

	a.logger.Info("Decision published",
		"display", display,
		"request_id", request.RequestID,
		"temperature", decision.Temperature,
		"brightness", decision.Brightness,
		"phase", decision.Phase,
		"reason", decision.Reason)
}

// handleOverrideMessage handles manual override control for a display.
// Payload:
//
//	{"action": "set", "minutes": 45}
//	{"action": "clear"}
func (a *Agent) handleOverrideMessage(msg mqtt.Message) {
	display := mqtt.DisplayFromTopic(msg.Topic())
	if display == "" {
		a.logger.Warn("Invalid override topic format", "topic", msg.Topic())
		return
	}

	var override struct {
		Action  string `json:"action"`
		Minutes int    `json:"minutes"`
	}
	if err := json.Unmarshal(msg.Payload(), &override); err != nil {
		a.logger.Error("Failed to parse override message",
			"display", display,
			"error", err)
		return
	}

	switch override.Action {
	case "set":
		minutes := override.Minutes
		if minutes <= 0 {
			minutes = a.cfg.ManualOverrideMinutes
		}
		expiresAt := a.overrideManager.Set(display, time.Duration(minutes)*time.Minute)
		a.logger.Info("Manual override set",
			"display", display,
			"minutes", minutes,
			"expires_at", expiresAt.Format(time.RFC3339))
	case "clear":
		cleared := a.overrideManager.Clear(display)
		a.logger.Info("Manual override cleared",
			"display", display,
			"was_active", cleared)
	default:
		a.logger.Warn("Unknown override action",
			"display", display,
			"action", override.Action)
	}
}

// publishDecision publishes both the command and context messages for a decision
func (a *Agent) publishDecision(decision *Decision, requestID string) error {
	timestamp := time.Now().Format(time.RFC3339)

	commandMsg := map[string]interface{}{
		"request_id":  requestID,
		"temperature": decision.Temperature,
		"brightness":  decision.Brightness,
		"reason":      decision.Reason,
		"timestamp":   timestamp,
	}

	commandTopic := mqtt.CommandTopic(decision.Display)
	commandPayload, err := json.Marshal(commandMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal command message: %w", err)
	}
	if err := a.mqtt.Publish(commandTopic, 0, false, commandPayload); err != nil {
		return fmt.Errorf("failed to publish command to %s: %w", commandTopic, err)
	}

	contextMsg := map[string]interface{}{
		"source":       a.cfg.ServiceName,
		"type":         "colortemp",
		"display":      decision.Display,
		"temperature":  decision.Temperature,
		"brightness":   decision.Brightness,
		"phase":        string(decision.Phase),
		"progress":     decision.Progress,
		"reason":       decision.Reason,
		"evaluated_at": decision.At.Format(time.RFC3339),
		"timestamp":    timestamp,
		"automated":    true,
	}

	contextTopic := mqtt.ContextTopic(decision.Display)
	contextPayload, err := json.Marshal(contextMsg)
	if err != nil {
		return fmt.Errorf("failed to marshal context message: %w", err)
	}
	if err := a.mqtt.Publish(contextTopic, 0, false, contextPayload); err != nil {
		return fmt.Errorf("failed to publish context to %s: %w", contextTopic, err)
	}

	return nil
}

// OverrideManager exposes the override manager for API access
func (a *Agent) OverrideManager() *OverrideManager {
	return a.overrideManager
}
