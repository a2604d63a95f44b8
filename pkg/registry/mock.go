package registry

import (
	"context"

	"github.com/neuromesh-project/neuromesh/pkg/models"
)

const (
	mockHost  = "127.0.0.0"
	mockPort  = 8091
	mockStake = 100000
)

type MockRegistryParams struct {
	// N is the number of serving worker peers to register, with ids 1..N.
	N          int
	StakeLimit float64
	// IncludeValidator registers a validator-permit holder at id 0 whose
	// stake exceeds the limit, so it never shows up in samples.
	IncludeValidator bool
}

// NewMockRegistry builds an in-memory registry pre-populated with mock peers,
// the network equivalent of standing up a local devnet for tests and
// simulations.
func NewMockRegistry(params MockRegistryParams) (*Store, error) {
	store := NewStore(StoreParams{StakeLimit: params.StakeLimit})
	ctx := context.Background()

	if params.IncludeValidator {
		err := store.Add(ctx, models.PeerInfo{
			ID:              0,
			Serving:         true,
			ValidatorPermit: true,
			Stake:           mockStake,
			Address:         models.Address{Host: mockHost, Port: mockPort},
		})
		if err != nil {
			return nil, err
		}
	}

	for i := 1; i <= params.N; i++ {
		err := store.Add(ctx, models.PeerInfo{
			ID:      models.PeerID(i),
			Serving: true,
			Stake:   mockStake,
			Address: models.Address{Host: mockHost, Port: mockPort},
		})
		if err != nil {
			return nil, err
		}
	}

	return store, nil
}
