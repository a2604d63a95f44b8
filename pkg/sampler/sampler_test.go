package sampler

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/neuromesh-project/neuromesh/pkg/logger"
	"github.com/neuromesh-project/neuromesh/pkg/models"
	"github.com/neuromesh-project/neuromesh/pkg/registry"
)

const testStakeLimit = 1024

type UniformSamplerSuite struct {
	suite.Suite
	ctx context.Context
}

func TestUniformSamplerSuite(t *testing.T) {
	suite.Run(t, new(UniformSamplerSuite))
}

func (s *UniformSamplerSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.ctx = context.Background()
}

func (s *UniformSamplerSuite) newSampler(seed int64) Sampler {
	return NewUniformSampler(UniformSamplerParams{
		Rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test sampling
	})
}

// snapshotOf builds a snapshot of n serving peers with ids 0..n-1.
func snapshotOf(n int) registry.Snapshot {
	peers := make([]models.PeerInfo, n)
	for i := range peers {
		peers[i] = models.PeerInfo{
			ID:      models.PeerID(i),
			Serving: true,
			Stake:   100000,
			Address: models.Address{Host: "127.0.0.0", Port: 8091},
		}
	}
	return registry.Snapshot{Peers: peers, StakeLimit: testStakeLimit}
}

func (s *UniformSamplerSuite) TestSampleSizeNeverExceedsEligible() {
	snapshot := snapshotOf(16)
	for k := 0; k <= 20; k++ {
		selected, err := s.newSampler(42).Sample(s.ctx, snapshot, k, nil)
		s.NoError(err)
		s.Len(selected, lo.Min([]int{k, 16}))
		s.Len(lo.Uniq(selected), len(selected), "sampled ids must be unique")
		for _, id := range selected {
			s.True(id >= 0 && id < 16)
		}
	}
}

func (s *UniformSamplerSuite) TestNegativeSampleSize() {
	_, err := s.newSampler(42).Sample(s.ctx, snapshotOf(4), -1, nil)
	s.Error(err)
	s.ErrorContains(err, "non-negative")
	s.IsType(ErrNegativeSampleSize{}, err)
}

func (s *UniformSamplerSuite) TestEmptySelectionIsNotAnError() {
	// no peers at all
	selected, err := s.newSampler(42).Sample(s.ctx, registry.Snapshot{StakeLimit: testStakeLimit}, 10, nil)
	s.NoError(err)
	s.Empty(selected)

	// peers exist but none are eligible
	snapshot := snapshotOf(8)
	for i := range snapshot.Peers {
		snapshot.Peers[i].Serving = false
	}
	selected, err = s.newSampler(42).Sample(s.ctx, snapshot, 10, nil)
	s.NoError(err)
	s.Empty(selected)
}

func (s *UniformSamplerSuite) TestNeverSelectsIneligiblePeers() {
	snapshot := snapshotOf(16)
	ineligible := make(map[models.PeerID]struct{})
	for i := range snapshot.Peers {
		switch {
		case i%3 == 0:
			snapshot.Peers[i].Serving = false
			ineligible[snapshot.Peers[i].ID] = struct{}{}
		case i%3 == 1:
			snapshot.Peers[i].ValidatorPermit = true
			snapshot.Peers[i].Stake = testStakeLimit + 1
			ineligible[snapshot.Peers[i].ID] = struct{}{}
		}
	}

	selected, err := s.newSampler(42).Sample(s.ctx, snapshot, 16, nil)
	s.NoError(err)
	s.Len(selected, 16-len(ineligible))
	for _, id := range selected {
		s.NotContains(ineligible, id)
	}
}

func (s *UniformSamplerSuite) TestBackfillFromExcludedPeers() {
	snapshot := snapshotOf(10)
	exclude := []models.PeerID{0, 1, 2, 3, 4, 5}

	selected, err := s.newSampler(42).Sample(s.ctx, snapshot, 8, exclude)
	s.NoError(err)
	s.Len(selected, 8)
	s.Len(lo.Uniq(selected), 8)

	// only 4 candidates remain outside the exclusion set, so all of them are
	// in the sample and exactly 4 excluded peers were drawn to backfill
	s.Subset(selected, []models.PeerID{6, 7, 8, 9})
	backfilled := lo.Intersect(selected, exclude)
	s.Len(backfilled, 4)
}

func (s *UniformSamplerSuite) TestBackfillStillClampsToEligible() {
	snapshot := snapshotOf(5)
	exclude := []models.PeerID{0, 1, 2, 3, 4}

	// every eligible peer is excluded, and k exceeds the eligible count
	selected, err := s.newSampler(42).Sample(s.ctx, snapshot, 8, exclude)
	s.NoError(err)
	s.Len(selected, 5)
	s.ElementsMatch([]models.PeerID{0, 1, 2, 3, 4}, selected)
}

func (s *UniformSamplerSuite) TestDeterministicUnderFixedSeed() {
	snapshot := snapshotOf(32)
	exclude := []models.PeerID{3, 7, 11}

	first, err := s.newSampler(1234).Sample(s.ctx, snapshot, 10, exclude)
	s.NoError(err)
	second, err := s.newSampler(1234).Sample(s.ctx, snapshot, 10, exclude)
	s.NoError(err)
	s.Equal(first, second)

	different, err := s.newSampler(5678).Sample(s.ctx, snapshot, 10, exclude)
	s.NoError(err)
	// a different seed is allowed to coincide, but over 32C10 samples it
	// practically never does
	s.NotEqual(first, different)
}

func (s *UniformSamplerSuite) TestSampleFromMockRegistry() {
	store, err := registry.NewMockRegistry(registry.MockRegistryParams{
		N:                16,
		StakeLimit:       testStakeLimit,
		IncludeValidator: true,
	})
	s.Require().NoError(err)
	snapshot, err := store.Snapshot(s.ctx)
	s.Require().NoError(err)

	selected, err := s.newSampler(42).Sample(s.ctx, snapshot, 10, nil)
	s.NoError(err)
	s.Len(selected, 10)
	s.Len(lo.Uniq(selected), 10)
	for _, id := range selected {
		// the registered validator at id 0 holds a permit above the stake
		// limit and must never be sampled
		s.True(id >= 1 && id <= 16)
	}
}
