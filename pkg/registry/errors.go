package registry

import (
	"fmt"

	"github.com/neuromesh-project/neuromesh/pkg/models"
)

// ErrPeerNotFound is returned when no info is known for a requested peer id.
type ErrPeerNotFound struct {
	PeerID models.PeerID
}

func NewErrPeerNotFound(id models.PeerID) ErrPeerNotFound {
	return ErrPeerNotFound{PeerID: id}
}

func (e ErrPeerNotFound) Error() string {
	return fmt.Sprintf("peer not found in registry: %s", e.PeerID)
}
