// Package config loads search profiles for the planetpath CLI.
//
// A profile is a YAML document:
//
//	days: 3
//	max_expansions: 2000000
//	length_pruning: true
//	biomes:            # order defines the biome index
//	  barren: 1
//	  tundra: 14
//	  ...
//
// Absent keys keep their defaults. Environment variables
// PLANETPATH_DAYS, PLANETPATH_MAX_EXPANSIONS and PLANETPATH_LENGTH_PRUNING
// override the file.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/planetpath/pathsearch"
)

// Environment variable names read by ApplyEnv.
const (
	EnvDays          = "PLANETPATH_DAYS"
	EnvMaxExpansions = "PLANETPATH_MAX_EXPANSIONS"
	EnvLengthPruning = "PLANETPATH_LENGTH_PRUNING"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is a search profile.
type Config struct {
	Days          int         `yaml:"days"`
	MaxExpansions int         `yaml:"max_expansions"`
	LengthPruning bool        `yaml:"length_pruning"`
	Biomes        *BiomeTable `yaml:"biomes"`
}

// Default returns the built-in profile: one day, no expansion cap, pruning
// on, and the standard seven-biome table.
func Default() *Config {
	return &Config{
		Days:          1,
		MaxExpansions: 0,
		LengthPruning: true,
		Biomes:        DefaultBiomeTable(),
	}
}

// Load reads the YAML profile at path on top of Default. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	if cfg.Biomes == nil {
		cfg.Biomes = DefaultBiomeTable()
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from the environment through lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDays); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s=%q", EnvDays, v)
		}
		c.Days = n
	}
	if v, ok := lookup(EnvMaxExpansions); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s=%q", EnvMaxExpansions, v)
		}
		c.MaxExpansions = n
	}
	if v, ok := lookup(EnvLengthPruning); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s=%q", EnvLengthPruning, v)
		}
		c.LengthPruning = b
	}

	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Days < 1 {
		return errors.Wrapf(ErrInvalid, "days must be positive, got %d", c.Days)
	}
	if c.MaxExpansions < 0 {
		return errors.Wrapf(ErrInvalid, "max_expansions must be non-negative, got %d", c.MaxExpansions)
	}
	if c.Biomes == nil || c.Biomes.Len() == 0 {
		return errors.Wrap(ErrInvalid, "biomes must not be empty")
	}
	return nil
}

// SearchOptions translates the profile into pathsearch options.
func (c *Config) SearchOptions(log *zap.Logger) []pathsearch.Option {
	opts := []pathsearch.Option{
		pathsearch.WithBiomeWeights(c.Biomes.Weights()),
		pathsearch.WithMaxExpansions(c.MaxExpansions),
		pathsearch.WithLogger(log),
	}
	if !c.LengthPruning {
		opts = append(opts, pathsearch.WithoutLengthPruning())
	}

	return opts
}
