package routine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/saaga0h/sundial/pkg/redis"
)

// Storage keeps the latest published configuration per display in Redis so
// sibling agents can read the current state without replaying MQTT traffic.
// Entries expire on their own; this is runtime context, not a settings store.
type Storage struct {
	redis  redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewStorage creates a new storage layer with the given snapshot TTL
func NewStorage(redisClient redis.Client, ttl time.Duration, logger *slog.Logger) *Storage {
	return &Storage{
		redis:  redisClient,
		ttl:    ttl,
		logger: logger,
	}
}

// StoreDecision writes the latest decision for a display as a hash with a TTL
func (s *Storage) StoreDecision(ctx context.Context, decision *Decision) error {
	key := redis.ColortempStateKey(decision.Display)

	fields := map[string]string{
		"temperature":  fmt.Sprintf("%.1f", decision.Temperature),
		"brightness":   fmt.Sprintf("%.4f", decision.Brightness),
		"phase":        string(decision.Phase),
		"progress":     fmt.Sprintf("%.4f", decision.Progress),
		"reason":       decision.Reason,
		"evaluated_at": decision.At.Format(time.RFC3339),
	}

	for field, value := range fields {
		if err := s.redis.HSet(ctx, key, field, value); err != nil {
			return fmt.Errorf("failed to store decision for %s: %w", decision.Display, err)
		}
	}

	if err := s.redis.Expire(ctx, key, s.ttl); err != nil {
		return fmt.Errorf("failed to set TTL on %s: %w", key, err)
	}

	s.logger.Debug("Stored decision snapshot",
		"display", decision.Display,
		"key", key,
		"ttl", s.ttl)
	return nil
}

// LoadState reads the stored state hash for a display. Returns an empty map
// when no snapshot exists or it has expired.
func (s *Storage) LoadState(ctx context.Context, display string) (map[string]string, error) {
	state, err := s.redis.HGetAll(ctx, redis.ColortempStateKey(display))
	if err != nil {
		return nil, fmt.Errorf("failed to load state for %s: %w", display, err)
	}
	return state, nil
}
