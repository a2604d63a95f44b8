package neuromesh

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/neuromesh-project/neuromesh/pkg/config"
	"github.com/neuromesh-project/neuromesh/pkg/orchestrator"
	"github.com/neuromesh-project/neuromesh/pkg/registry"
	"github.com/neuromesh-project/neuromesh/pkg/sampler"
	"github.com/neuromesh-project/neuromesh/pkg/scoring"
	"github.com/neuromesh-project/neuromesh/pkg/transport"
)

var (
	simulatePeers  int
	simulateCycles int
)

func init() { //nolint:gochecknoinits
	simulateCmd.PersistentFlags().IntVar(
		&simulatePeers, "peers", 16,
		`The number of mock peers to stand up.`,
	)
	simulateCmd.PersistentFlags().IntVar(
		&simulateCycles, "cycles", 10,
		`The number of query cycles to run.`,
	)
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run query cycles against a simulated network",
	Long: `Stands up a mock registry and a simulated transport, then runs repeated
sample/query/score cycles against it. Useful for exercising the validator
pipeline without a live network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runSimulate(cmd, cfg)
	},
}

func runSimulate(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()

	seed := cfg.Sampler.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := registry.NewMockRegistry(registry.MockRegistryParams{
		N:                simulatePeers,
		StakeLimit:       cfg.Sampler.StakeLimit,
		IncludeValidator: true,
	})
	if err != nil {
		return err
	}

	simulator := transport.NewSimulator(transport.SimulatorParams{
		MinDelay: cfg.Simulator.MinDelay,
		MaxDelay: cfg.Simulator.MaxDelay,
		Rand:     rand.New(rand.NewSource(seed)), //nolint:gosec // simulated delays, not crypto
	})
	tracker := scoring.NewTracker(scoring.TrackerParams{
		Alpha: cfg.Scoring.Alpha,
		Size:  simulatePeers + 1,
	})

	o := orchestrator.NewOrchestrator(orchestrator.OrchestratorParams{
		Registry:   store,
		Sampler:    sampler.NewUniformSampler(sampler.UniformSamplerParams{Rand: rand.New(rand.NewSource(seed))}), //nolint:gosec
		Transport:  simulator,
		SampleSize: cfg.Node.SampleSize,
		Timeout:    cfg.Node.QueryTimeout,
		RewardFn: func(_ context.Context, query int64, responses []transport.Response) []float64 {
			return scoring.ExactMatchRewards(query, responses)
		},
		ScoreFn: tracker.Update,
	})

	for i := 0; i < simulateCycles; i++ {
		if err := o.RunCycle(ctx); err != nil {
			return err
		}
	}

	log.Ctx(ctx).Info().Floats64("Weights", tracker.Weights()).Msg("Simulation complete")
	return nil
}
