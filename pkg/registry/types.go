package registry

import (
	"context"

	"github.com/neuromesh-project/neuromesh/pkg/models"
)

// Snapshot is a read-only view of the known peers and the stake limit that
// governs their eligibility. A snapshot is immutable for the duration of one
// sampling/query cycle; consumers never mutate it.
type Snapshot struct {
	Peers      []models.PeerInfo
	StakeLimit float64
}

// Get returns the peer with the given id, if present in the snapshot.
func (s Snapshot) Get(id models.PeerID) (models.PeerInfo, bool) {
	for _, peer := range s.Peers {
		if peer.ID == id {
			return peer, true
		}
	}
	return models.PeerInfo{}, false
}

// Provider supplies registry snapshots to the sampling and query pipeline.
// Implementations own synchronization with whatever source of truth tracks
// network membership; the pipeline only reads.
type Provider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}
