package scoring

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/floats"

	"github.com/neuromesh-project/neuromesh/pkg/logger"
	"github.com/neuromesh-project/neuromesh/pkg/models"
)

type TrackerSuite struct {
	suite.Suite
	ctx context.Context
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}

func (s *TrackerSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.ctx = context.Background()
}

func (s *TrackerSuite) TestMovingAverage() {
	tracker := NewTracker(TrackerParams{Alpha: 0.5, Size: 4})

	s.NoError(tracker.Update(s.ctx, []float64{1, 1}, []models.PeerID{1, 2}))
	s.Equal([]float64{0, 0.5, 0.5, 0}, tracker.Scores())

	s.NoError(tracker.Update(s.ctx, []float64{1, 0}, []models.PeerID{1, 2}))
	s.Equal([]float64{0, 0.75, 0.25, 0}, tracker.Scores())
}

func (s *TrackerSuite) TestLengthMismatch() {
	tracker := NewTracker(TrackerParams{Alpha: 0.1, Size: 4})
	err := tracker.Update(s.ctx, []float64{1}, []models.PeerID{1, 2})
	s.Error(err)
	s.IsType(ErrLengthMismatch{}, err)
}

func (s *TrackerSuite) TestToleratesNaNRewards() {
	tracker := NewTracker(TrackerParams{Alpha: 0.5, Size: 2})

	s.NoError(tracker.Update(s.ctx, []float64{math.NaN(), 1}, []models.PeerID{0, 1}))
	scores := tracker.Scores()
	s.Equal([]float64{0, 0.5}, scores)
	for _, score := range scores {
		s.False(math.IsNaN(score))
	}
}

func (s *TrackerSuite) TestGrowsForUnseenPeers() {
	tracker := NewTracker(TrackerParams{Alpha: 1, Size: 1})
	s.NoError(tracker.Update(s.ctx, []float64{1}, []models.PeerID{7}))

	scores := tracker.Scores()
	s.Len(scores, 8)
	s.Equal(1.0, scores[7])
}

func (s *TrackerSuite) TestWeightsNormalize() {
	tracker := NewTracker(TrackerParams{Alpha: 1, Size: 4})
	s.NoError(tracker.Update(s.ctx, []float64{1, 1, 0.5}, []models.PeerID{0, 1, 2}))

	weights := tracker.Weights()
	s.InDelta(1.0, floats.Sum(weights), 1e-9)
	s.InDelta(0.4, weights[0], 1e-9)
	s.InDelta(0.4, weights[1], 1e-9)
	s.InDelta(0.2, weights[2], 1e-9)
	s.Equal(0.0, weights[3])
}

func (s *TrackerSuite) TestWeightsAllZero() {
	tracker := NewTracker(TrackerParams{Alpha: 0.1, Size: 3})
	s.Equal([]float64{0, 0, 0}, tracker.Weights())
}
