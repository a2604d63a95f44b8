package scoring

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"
)

// SanitizeRewards replaces NaN reward values with zero so downstream score
// updates never ingest them. A NaN is a data-quality anomaly, not an error:
// it is logged as a warning and the cycle carries on.
func SanitizeRewards(ctx context.Context, rewards []float64) []float64 {
	sanitized := make([]float64, len(rewards))
	replaced := 0
	for i, reward := range rewards {
		if math.IsNaN(reward) {
			replaced++
			continue
		}
		sanitized[i] = reward
	}
	if replaced > 0 {
		log.Ctx(ctx).Warn().
			Int("Replaced", replaced).
			Floats64("Rewards", rewards).
			Msg("NaN rewards detected and zeroed")
	}
	return sanitized
}
