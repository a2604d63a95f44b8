package scoring

import (
	"context"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"

	"github.com/neuromesh-project/neuromesh/pkg/models"
)

type TrackerParams struct {
	// Alpha is the smoothing factor of the moving average: higher values
	// weigh recent rewards more heavily.
	Alpha float64
	// Size is the initial number of peer score slots. The tracker grows as
	// higher peer ids show up.
	Size int
}

// Tracker maintains a per-peer exponential moving average of rewards. It is
// a ready-made score-update callback for the query cycle; scores feed weight
// setting on the network.
type Tracker struct {
	alpha  float64
	mu     sync.RWMutex
	scores []float64
}

func NewTracker(params TrackerParams) *Tracker {
	return &Tracker{
		alpha:  params.Alpha,
		scores: make([]float64, params.Size),
	}
}

// Update folds one cycle's rewards into the running scores. NaN rewards are
// tolerated and treated as zero, so a misbehaving reward function can never
// poison the moving average.
func (t *Tracker) Update(ctx context.Context, rewards []float64, peers []models.PeerID) error {
	if len(rewards) != len(peers) {
		return NewErrLengthMismatch(len(rewards), len(peers))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i, peer := range peers {
		reward := rewards[i]
		if math.IsNaN(reward) {
			log.Ctx(ctx).Warn().
				Stringer("PeerID", peer).
				Msg("NaN reward in score update, treating as zero")
			reward = 0
		}
		idx := int(peer)
		if idx < 0 {
			continue
		}
		t.grow(idx + 1)
		t.scores[idx] = t.alpha*reward + (1-t.alpha)*t.scores[idx]
	}
	return nil
}

// Scores returns a copy of the current per-peer scores.
func (t *Tracker) Scores() []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	scores := make([]float64, len(t.scores))
	copy(scores, t.scores)
	return scores
}

// Weights returns the scores normalized to sum to one, suitable for weight
// setting. All-zero scores normalize to all-zero weights.
func (t *Tracker) Weights() []float64 {
	weights := t.Scores()
	total := floats.Sum(weights)
	if total > 0 {
		floats.Scale(1/total, weights)
	}
	return weights
}

// grow extends the score slice to at least n slots. Callers must hold t.mu.
func (t *Tracker) grow(n int) {
	for len(t.scores) < n {
		t.scores = append(t.scores, 0)
	}
}
