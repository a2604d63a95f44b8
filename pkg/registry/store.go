package registry

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/neuromesh-project/neuromesh/pkg/models"
)

// TODO: replace the manual and lazy eviction with a more efficient caching library
type peerInfoWrapper struct {
	models.PeerInfo
	evictAt time.Time
}

type StoreParams struct {
	// TTL is how long a peer announcement stays valid before the peer is
	// evicted from snapshots. Zero means announcements never expire.
	TTL        time.Duration
	StakeLimit float64
	Clock      clock.Clock
}

// Store is an in-memory registry of peer announcements. Peers that do not
// re-announce within the TTL are lazily evicted the next time a snapshot is
// taken.
type Store struct {
	ttl        time.Duration
	stakeLimit float64
	clock      clock.Clock
	peerMap    map[models.PeerID]peerInfoWrapper
	mu         sync.RWMutex
}

func NewStore(params StoreParams) *Store {
	if params.Clock == nil {
		params.Clock = clock.New()
	}
	return &Store{
		ttl:        params.TTL,
		stakeLimit: params.StakeLimit,
		clock:      params.Clock,
		peerMap:    make(map[models.PeerID]peerInfoWrapper),
	}
}

// Add adds or refreshes a peer announcement.
func (s *Store) Add(ctx context.Context, info models.PeerInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.peerMap[info.ID] = peerInfoWrapper{
		PeerInfo: info,
		evictAt:  s.clock.Now().Add(s.ttl),
	}

	log.Ctx(ctx).Trace().Msgf("Added peer info %+v", info)
	return nil
}

func (s *Store) Get(ctx context.Context, id models.PeerID) (models.PeerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wrapper, ok := s.peerMap[id]
	if !ok {
		return models.PeerInfo{}, NewErrPeerNotFound(id)
	}
	if s.expired(wrapper) {
		return models.PeerInfo{}, NewErrPeerNotFound(id)
	}
	return wrapper.PeerInfo, nil
}

func (s *Store) Delete(ctx context.Context, id models.PeerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.peerMap, id)
	return nil
}

// Snapshot returns the current membership view ordered by peer id, evicting
// stale announcements along the way.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range maps.Keys(s.peerMap) {
		if s.expired(s.peerMap[id]) {
			log.Ctx(ctx).Debug().Stringer("PeerID", id).Msg("Evicting expired peer announcement")
			delete(s.peerMap, id)
		}
	}

	peers := make([]models.PeerInfo, 0, len(s.peerMap))
	for _, wrapper := range s.peerMap {
		peers = append(peers, wrapper.PeerInfo)
	}
	slices.SortFunc(peers, func(a, b models.PeerInfo) bool { return a.ID < b.ID })

	return Snapshot{Peers: peers, StakeLimit: s.stakeLimit}, nil
}

func (s *Store) expired(wrapper peerInfoWrapper) bool {
	return s.ttl > 0 && s.clock.Now().After(wrapper.evictAt)
}

// compile-time interface check
var _ Provider = (*Store)(nil)
