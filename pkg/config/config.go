package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const environmentVariablePrefix = "NEUROMESH"

var environmentVariableReplace = strings.NewReplacer(".", "_")

// Default returns the network's reference parameters: a 10-peer sample with
// a 12 second deadline, a 1024 stake limit for permit holders, and simulated
// delays of up to one second.
func Default() Config {
	return Config{
		Node: NodeConfig{
			SampleSize:   10,
			QueryTimeout: 12 * time.Second,
		},
		Sampler: SamplerConfig{
			StakeLimit: 1024,
		},
		Simulator: SimulatorConfig{
			MinDelay: 0,
			MaxDelay: time.Second,
		},
		Scoring: ScoringConfig{
			Alpha: 0.1,
		},
	}
}

// Load builds the configuration from defaults overlaid with NEUROMESH_*
// environment variables, and validates it.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(environmentVariablePrefix)
	v.SetEnvKeyReplacer(environmentVariableReplace)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "validating config")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("Node.SampleSize", cfg.Node.SampleSize)
	v.SetDefault("Node.QueryTimeout", cfg.Node.QueryTimeout)
	v.SetDefault("Sampler.StakeLimit", cfg.Sampler.StakeLimit)
	v.SetDefault("Sampler.Seed", cfg.Sampler.Seed)
	v.SetDefault("Simulator.MinDelay", cfg.Simulator.MinDelay)
	v.SetDefault("Simulator.MaxDelay", cfg.Simulator.MaxDelay)
	v.SetDefault("Scoring.Alpha", cfg.Scoring.Alpha)
}
