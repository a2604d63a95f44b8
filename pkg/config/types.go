package config

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

type Config struct {
	Node      NodeConfig      `mapstructure:"Node"`
	Sampler   SamplerConfig   `mapstructure:"Sampler"`
	Simulator SimulatorConfig `mapstructure:"Simulator"`
	Scoring   ScoringConfig   `mapstructure:"Scoring"`
}

type NodeConfig struct {
	// SampleSize is how many peers each query cycle targets.
	SampleSize int `mapstructure:"SampleSize"`
	// QueryTimeout is the soft per-peer response deadline.
	QueryTimeout time.Duration `mapstructure:"QueryTimeout"`
}

type SamplerConfig struct {
	// StakeLimit filters out validator-permit holders whose stake exceeds it.
	StakeLimit float64 `mapstructure:"StakeLimit"`
	// Seed fixes the sampling and simulation randomness. Zero seeds from the
	// wall clock.
	Seed int64 `mapstructure:"Seed"`
}

type SimulatorConfig struct {
	MinDelay time.Duration `mapstructure:"MinDelay"`
	MaxDelay time.Duration `mapstructure:"MaxDelay"`
}

type ScoringConfig struct {
	// Alpha is the smoothing factor of the score moving average.
	Alpha float64 `mapstructure:"Alpha"`
}

func (c Config) Validate() error {
	var mErr *multierror.Error
	if c.Node.SampleSize < 0 {
		mErr = multierror.Append(mErr, errors.Errorf("Node.SampleSize must be non-negative, got: %d", c.Node.SampleSize))
	}
	if c.Node.QueryTimeout <= 0 {
		mErr = multierror.Append(mErr, errors.Errorf("Node.QueryTimeout must be positive, got: %s", c.Node.QueryTimeout))
	}
	if c.Sampler.StakeLimit < 0 {
		mErr = multierror.Append(mErr, errors.Errorf("Sampler.StakeLimit must be non-negative, got: %f", c.Sampler.StakeLimit))
	}
	if c.Simulator.MinDelay < 0 {
		mErr = multierror.Append(mErr, errors.Errorf("Simulator.MinDelay must be non-negative, got: %s", c.Simulator.MinDelay))
	}
	if c.Simulator.MaxDelay < c.Simulator.MinDelay {
		mErr = multierror.Append(mErr, errors.Errorf(
			"Simulator.MaxDelay must not be less than Simulator.MinDelay, got: %s < %s",
			c.Simulator.MaxDelay, c.Simulator.MinDelay))
	}
	if c.Scoring.Alpha <= 0 || c.Scoring.Alpha > 1 {
		mErr = multierror.Append(mErr, errors.Errorf("Scoring.Alpha must be in (0, 1], got: %f", c.Scoring.Alpha))
	}
	return mErr.ErrorOrNil()
}
