package plagiarism

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/textproof/textproof/internal/infra/redis"
	"github.com/textproof/textproof/internal/models"
)

// UpdateStatus records a scan's current step in Redis so clients can
// poll long-running scans
func UpdateStatus(ctx context.Context, redisClient *redis.Client, scanID string, step models.Step, ttl time.Duration) error {
	validSteps := map[models.Step]bool{
		models.StepIdle:      true,
		models.StepInitiated: true,
		models.StepScanning:  true,
		models.StepCompleted: true,
		models.StepFailed:    true,
	}
	if !validSteps[step] {
		return fmt.Errorf("unknown step: %s", step)
	}

	rkey := "scan_status:" + scanID

	if err := redisClient.Set(ctx, rkey, string(step), ttl).Err(); err != nil {
		log.Error().Err(err).
			Str("step", string(step)).
			Str("scanId", scanID).
			Msg("Failed to update status in Redis")
		return fmt.Errorf("failed to update status in Redis: %w", err)
	}

	return nil
}

// GetStatus reads a scan's current step, defaulting to idle when the
// key has expired or was never written
func GetStatus(ctx context.Context, redisClient *redis.Client, scanID string) (models.Step, error) {
	rkey := "scan_status:" + scanID

	value, err := redisClient.Get(ctx, rkey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return models.StepIdle, nil
		}
		return models.StepIdle, fmt.Errorf("failed to read status from Redis: %w", err)
	}

	return models.Step(value), nil
}
