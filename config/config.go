// Package config loads search parameters and evaluator weights from a
// TOML file. CLI flags in cmd/chessbot override individual fields after
// Load.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/tholman/chessbot/engine"
)

// SearchConfig holds the search tunables.
type SearchConfig struct {
	// MaxWorkers bounds the root-child worker pool; a reasonable default
	// is min(8, hardware parallelism). 0 means "use that default".
	MaxWorkers int `toml:"max_workers"`
}

// Config is the top-level TOML document shape.
type Config struct {
	Search  SearchConfig   `toml:"search"`
	Weights engine.Weights `toml:"weights"`
}

// Default returns a Config with reasonable baseline values.
func Default() Config {
	return Config{
		Search:  SearchConfig{MaxWorkers: 8},
		Weights: engine.DefaultWeights,
	}
}

// Load parses the TOML file at path, starting from Default() so any
// field the file omits keeps its suggested value.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
