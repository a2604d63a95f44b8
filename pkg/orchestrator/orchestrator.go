// Package orchestrator composes the peer sampler, a transport, and the
// injected reward/score callbacks into one query cycle: sample a set of
// peers, fan a request out to them, score the responses, and fold the scores
// into the network view.
package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/neuromesh-project/neuromesh/pkg/models"
	"github.com/neuromesh-project/neuromesh/pkg/protocol"
	"github.com/neuromesh-project/neuromesh/pkg/registry"
	"github.com/neuromesh-project/neuromesh/pkg/sampler"
	"github.com/neuromesh-project/neuromesh/pkg/scoring"
	"github.com/neuromesh-project/neuromesh/pkg/transport"
)

// RewardFn scores one cycle's responses against the query that produced
// them. Values are nominally in [0, 1]; NaN entries are sanitized before
// they reach the score update.
type RewardFn func(ctx context.Context, query int64, responses []transport.Response) []float64

// ScoreFn folds sanitized rewards into whatever score state the caller
// maintains. It is called with slices of equal length.
type ScoreFn func(ctx context.Context, rewards []float64, peers []models.PeerID) error

type OrchestratorParams struct {
	Registry   registry.Provider
	Sampler    sampler.Sampler
	Transport  transport.Transport
	SampleSize int
	Timeout    time.Duration
	RewardFn   RewardFn
	ScoreFn    ScoreFn
}

type Orchestrator struct {
	registry   registry.Provider
	sampler    sampler.Sampler
	transport  transport.Transport
	sampleSize int
	timeout    time.Duration
	rewardFn   RewardFn
	scoreFn    ScoreFn

	// step is the query input for the next cycle, incremented per cycle.
	step int64
	// lastQueried is soft-excluded from the next sample so cycles spread
	// load across the network.
	lastQueried []models.PeerID
}

func NewOrchestrator(params OrchestratorParams) *Orchestrator {
	return &Orchestrator{
		step:       1,
		registry:   params.Registry,
		sampler:    params.Sampler,
		transport:  params.Transport,
		sampleSize: params.SampleSize,
		timeout:    params.Timeout,
		rewardFn:   params.RewardFn,
		scoreFn:    params.ScoreFn,
	}
}

// RunCycle executes one sample → query → score round. An empty sample is a
// skip, not a failure. Errors are logged once at the cycle boundary and
// returned to the caller; each cycle starts from a fresh snapshot and a
// fresh sample, so a failed cycle leaves no residue for the next one.
func (o *Orchestrator) RunCycle(ctx context.Context) error {
	ctx = log.Ctx(ctx).With().Str("CycleID", uuid.NewString()).Logger().WithContext(ctx)
	err := o.runCycle(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Query cycle failed")
	}
	return err
}

func (o *Orchestrator) runCycle(ctx context.Context) error {
	snapshot, err := o.registry.Snapshot(ctx)
	if err != nil {
		return errors.Wrap(err, "reading registry snapshot")
	}

	peerIDs, err := o.sampler.Sample(ctx, snapshot, o.sampleSize, o.lastQueried)
	if err != nil {
		return errors.Wrap(err, "sampling peers")
	}
	if len(peerIDs) == 0 {
		log.Ctx(ctx).Warn().Msg("No available peers to query, skipping cycle")
		return nil
	}

	peers := lo.FilterMap(peerIDs, func(id models.PeerID, _ int) (models.PeerInfo, bool) {
		return snapshot.Get(id)
	})

	query := o.step
	o.step++

	responses, err := o.transport.Send(ctx, peers, protocol.NewRequest(query), transport.SendOptions{
		Timeout: o.timeout,
	})
	if err != nil {
		return errors.Wrap(err, "querying peers")
	}
	log.Ctx(ctx).Debug().
		Int("Responses", len(responses)).
		Int("Queried", len(peers)).
		Msg("Received responses from peers")

	rewards := o.rewardFn(ctx, query, responses)
	if len(rewards) == 0 {
		log.Ctx(ctx).Warn().Msg("No rewards generated from responses, skipping score update")
		return nil
	}
	rewards = scoring.SanitizeRewards(ctx, rewards)

	if err := o.scoreFn(ctx, rewards, peerIDs); err != nil {
		return errors.Wrap(err, "updating scores")
	}

	o.lastQueried = peerIDs
	return nil
}
