package transport

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/neuromesh-project/neuromesh/pkg/models"
	"github.com/neuromesh-project/neuromesh/pkg/protocol"
)

// Ping queries each peer with a zero-value request and partitions the peers
// into those that answered before the deadline and those that did not.
func Ping(
	ctx context.Context,
	t Transport,
	peers []models.PeerInfo,
	timeout time.Duration,
) (reachable []models.PeerID, unreachable []models.PeerID, err error) {
	responses, err := t.Send(ctx, peers, protocol.NewRequest(0), SendOptions{Timeout: timeout})
	if err != nil {
		return nil, nil, errors.Wrap(err, "pinging peers")
	}

	for _, response := range responses {
		if response.Envelope.Succeeded() {
			reachable = append(reachable, response.Peer)
		} else {
			unreachable = append(unreachable, response.Peer)
		}
	}

	log.Ctx(ctx).Debug().
		Int("Reachable", len(reachable)).
		Int("Unreachable", len(unreachable)).
		Msg("Pinged peers")
	return reachable, unreachable, nil
}
