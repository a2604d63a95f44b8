package sampler

import "github.com/neuromesh-project/neuromesh/pkg/models"

// IsAvailable reports whether a peer is eligible to be queried under the
// given stake limit. A peer must be serving, and peers holding a validator
// permit stop being queryable once their stake exceeds the limit.
func IsAvailable(peer models.PeerInfo, stakeLimit float64) bool {
	// Filter non serving peers.
	if !peer.Serving {
		return false
	}
	// Filter validator permit holders above the stake limit.
	if peer.ValidatorPermit && peer.Stake > stakeLimit {
		return false
	}
	return true
}
