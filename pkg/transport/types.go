package transport

import (
	"context"
	"time"

	"github.com/neuromesh-project/neuromesh/pkg/models"
	"github.com/neuromesh-project/neuromesh/pkg/protocol"
)

// SendOptions control a single fan-out exchange.
type SendOptions struct {
	// Timeout is the soft per-peer deadline. An exchange whose elapsed time
	// reaches the timeout is classified as a timeout; the boundary is
	// inclusive on the timeout side.
	Timeout time.Duration
	// Streaming requests a streamed response. Not every transport supports
	// it.
	Streaming bool
}

// Response pairs one peer's reply with its protocol metadata.
type Response struct {
	Peer     models.PeerID
	Request  *protocol.Request
	Envelope models.Envelope
}

// Output returns the response payload. For exchanges that timed out this is
// the protocol default, since the peer never answered.
func (r Response) Output() int64 {
	if r.Request == nil {
		return 0
	}
	return r.Request.Output
}

// Transport sends one request to a set of peers and gathers their replies.
// Implementations must return one Response per input peer, in input order,
// regardless of the order in which peers complete.
type Transport interface {
	Send(ctx context.Context, peers []models.PeerInfo, req *protocol.Request, opts SendOptions) ([]Response, error)
}
