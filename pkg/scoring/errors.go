package scoring

import "fmt"

// ErrLengthMismatch is returned when a score update is given a reward slice
// and a peer slice of different lengths.
type ErrLengthMismatch struct {
	Rewards int
	Peers   int
}

func NewErrLengthMismatch(rewards, peers int) ErrLengthMismatch {
	return ErrLengthMismatch{Rewards: rewards, Peers: peers}
}

func (e ErrLengthMismatch) Error() string {
	return fmt.Sprintf("rewards and peers must have the same length. rewards: %d, peers: %d", e.Rewards, e.Peers)
}
