package scoring

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeRewardsReplacesNaN(t *testing.T) {
	var logBuffer bytes.Buffer
	testLogger := zerolog.New(&logBuffer)
	ctx := testLogger.WithContext(context.Background())

	rewards := []float64{1, math.NaN(), 0.5, math.NaN()}
	sanitized := SanitizeRewards(ctx, rewards)

	assert.Equal(t, []float64{1, 0, 0.5, 0}, sanitized)
	for _, reward := range sanitized {
		assert.False(t, math.IsNaN(reward))
	}
	// the anomaly must be visible without crashing the cycle
	assert.Contains(t, logBuffer.String(), "NaN rewards detected")
	// the input slice is left untouched
	assert.True(t, math.IsNaN(rewards[1]))
}

func TestSanitizeRewardsNoOpWithoutNaN(t *testing.T) {
	var logBuffer bytes.Buffer
	testLogger := zerolog.New(&logBuffer)
	ctx := testLogger.WithContext(context.Background())

	sanitized := SanitizeRewards(ctx, []float64{0, 0.25, 1})
	assert.Equal(t, []float64{0, 0.25, 1}, sanitized)
	assert.Empty(t, logBuffer.String())
}
