package sampler

import (
	"context"
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/neuromesh-project/neuromesh/pkg/models"
	"github.com/neuromesh-project/neuromesh/pkg/registry"
)

// Sampler selects a bounded set of eligible peers to query from a registry
// snapshot.
type Sampler interface {
	// Sample returns up to k unique peer ids drawn from the snapshot's
	// eligible peers. The exclusion set is a soft preference: excluded peers
	// are avoided, but are drawn on to backfill when there are not enough
	// other candidates to reach k. Returns an empty result, not an error,
	// when no peers are eligible.
	Sample(ctx context.Context, snapshot registry.Snapshot, k int, exclude []models.PeerID) ([]models.PeerID, error)
}

type UniformSamplerParams struct {
	// Rand is the randomness source for sampling. Injecting it keeps samples
	// reproducible under a fixed seed.
	Rand *rand.Rand
}

type uniformSampler struct {
	rnd *rand.Rand
	mu  sync.Mutex
}

// NewUniformSampler returns a Sampler that draws uniformly at random, without
// replacement, from the snapshot's eligible peers.
func NewUniformSampler(params UniformSamplerParams) Sampler {
	return &uniformSampler{rnd: params.Rand}
}

func (s *uniformSampler) Sample(
	ctx context.Context,
	snapshot registry.Snapshot,
	k int,
	exclude []models.PeerID,
) ([]models.PeerID, error) {
	if k < 0 {
		return nil, NewErrNegativeSampleSize(k)
	}

	excludeSet := make(map[models.PeerID]struct{}, len(exclude))
	for _, id := range exclude {
		excludeSet[id] = struct{}{}
	}

	// Single pass to collect available peers.
	var availableIDs []models.PeerID
	var candidateIDs []models.PeerID
	for _, peer := range snapshot.Peers {
		if !IsAvailable(peer, snapshot.StakeLimit) {
			continue
		}
		availableIDs = append(availableIDs, peer.ID)
		if _, excluded := excludeSet[peer.ID]; !excluded {
			candidateIDs = append(candidateIDs, peer.ID)
		}
	}

	// If k is larger than the number of available peers, clamp it down.
	if k > len(availableIDs) {
		k = len(availableIDs)
	}
	if k == 0 {
		return []models.PeerID{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(candidateIDs) < k {
		// Not enough non-excluded candidates: backfill from excluded peers
		// that are still available.
		excludedAvailable := lo.Filter(availableIDs, func(id models.PeerID, _ int) bool {
			_, excluded := excludeSet[id]
			return excluded
		})
		needed := k - len(candidateIDs)
		backfill := s.draw(excludedAvailable, needed)
		log.Ctx(ctx).Debug().
			Int("Candidates", len(candidateIDs)).
			Int("Backfilled", len(backfill)).
			Msg("Sample exclusions violated to reach target size")
		candidateIDs = append(candidateIDs, backfill...)
	}

	if k > len(candidateIDs) {
		k = len(candidateIDs)
	}

	return s.draw(candidateIDs, k), nil
}

// draw picks n elements uniformly at random without replacement. Callers must
// hold s.mu.
func (s *uniformSampler) draw(pool []models.PeerID, n int) []models.PeerID {
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := make([]models.PeerID, len(pool))
	copy(shuffled, pool)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// compile-time interface check
var _ Sampler = (*uniformSampler)(nil)
