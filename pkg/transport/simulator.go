package transport

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog/log"

	"github.com/neuromesh-project/neuromesh/pkg/models"
	"github.com/neuromesh-project/neuromesh/pkg/protocol"
)

type SimulatorParams struct {
	// MinDelay and MaxDelay bound the uniformly drawn processing delay per
	// simulated exchange.
	MinDelay time.Duration
	MaxDelay time.Duration
	// Clock defaults to the wall clock. Tests inject a mock to make timeout
	// classification deterministic.
	Clock clock.Clock
	// Rand is the randomness source for delay draws. Access is serialized
	// internally, so a single generator may be shared across exchanges.
	Rand *rand.Rand
}

// Simulator is a drop-in Transport that emulates a real network exchange: one
// concurrent unit per peer, a randomized processing delay, and a soft timeout
// realized as a status classification. A unit is never aborted mid-delay;
// replies that arrive at or after the deadline are marked as timeouts with
// the payload left at the protocol default.
type Simulator struct {
	minDelay time.Duration
	maxDelay time.Duration
	clock    clock.Clock
	rnd      *rand.Rand
	mu       sync.Mutex
}

func NewSimulator(params SimulatorParams) *Simulator {
	if params.Clock == nil {
		params.Clock = clock.New()
	}
	if params.Rand == nil {
		params.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // simulated delays, not crypto
	}
	return &Simulator{
		minDelay: params.MinDelay,
		maxDelay: params.MaxDelay,
		clock:    params.Clock,
		rnd:      params.Rand,
	}
}

func (s *Simulator) Send(
	ctx context.Context,
	peers []models.PeerInfo,
	req *protocol.Request,
	opts SendOptions,
) ([]Response, error) {
	if opts.Streaming {
		return nil, ErrStreamingUnsupported
	}

	// One concurrent unit per peer, joined before returning. Each unit owns
	// its slot in the result slice so completion order never affects output
	// order.
	responses := make([]Response, len(peers))
	var wg sync.WaitGroup
	for i, peer := range peers {
		wg.Add(1)
		go func(i int, peer models.PeerInfo) {
			defer wg.Done()
			responses[i] = s.exchange(peer, req, opts.Timeout)
		}(i, peer)
	}
	wg.Wait()

	log.Ctx(ctx).Trace().
		Int("Peers", len(peers)).
		Dur("Timeout", opts.Timeout).
		Msg("Simulated exchange complete")
	return responses, nil
}

// exchange simulates one request/response round trip with a single peer.
func (s *Simulator) exchange(peer models.PeerInfo, req *protocol.Request, timeout time.Duration) Response {
	start := s.clock.Now()

	// Work on a clone so the caller's message is never mutated.
	msg := req.Clone()

	s.clock.Sleep(s.drawDelay())
	elapsed := s.clock.Since(start)

	envelope := models.Envelope{Elapsed: elapsed}
	if elapsed >= timeout {
		envelope.Status = models.StatusTimeout
		envelope.StatusMessage = models.StatusMessageTimeout
		// The peer never answered: Output stays at the protocol default.
	} else {
		envelope.Status = models.StatusOK
		envelope.StatusMessage = models.StatusMessageOK
		msg.Output = protocol.Transform(msg.Input)
	}

	return Response{Peer: peer.ID, Request: msg, Envelope: envelope}
}

func (s *Simulator) drawDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	spread := int64(s.maxDelay - s.minDelay)
	if spread <= 0 {
		return s.minDelay
	}
	return s.minDelay + time.Duration(s.rnd.Int63n(spread+1))
}

// compile-time interface check
var _ Transport = (*Simulator)(nil)
