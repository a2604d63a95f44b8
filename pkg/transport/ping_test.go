package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/neuromesh-project/neuromesh/pkg/logger"
)

type PingSuite struct {
	suite.Suite
	ctx context.Context
}

func TestPingSuite(t *testing.T) {
	suite.Run(t, new(PingSuite))
}

func (s *PingSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.ctx = context.Background()
}

func (s *PingSuite) TestAllReachable() {
	simulator := NewSimulator(SimulatorParams{MinDelay: 0, MaxDelay: 0})
	peers := testPeers(8)

	reachable, unreachable, err := Ping(s.ctx, simulator, peers, 5*time.Second)
	s.NoError(err)
	s.Empty(unreachable)
	s.Len(reachable, len(peers))
	for i, peer := range peers {
		s.Equal(peer.ID, reachable[i])
	}
}

func (s *PingSuite) TestAllUnreachable() {
	simulator := NewSimulator(SimulatorParams{
		MinDelay: 50 * time.Millisecond,
		MaxDelay: 50 * time.Millisecond,
	})
	peers := testPeers(8)

	reachable, unreachable, err := Ping(s.ctx, simulator, peers, 10*time.Millisecond)
	s.NoError(err)
	s.Empty(reachable)
	s.Len(unreachable, len(peers))
	for i, peer := range peers {
		s.Equal(peer.ID, unreachable[i])
	}
}
