package pathsearch

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *planet.Graph was passed to Search.
	ErrNilGraph = errors.New("pathsearch: graph is nil")

	// ErrPolesUndefined indicates that the graph has no north or south pole,
	// typically because DeriveToroidalTopology was never run.
	ErrPolesUndefined = errors.New("pathsearch: poles are undefined")

	// ErrBadDays indicates a non-positive day count.
	ErrBadDays = errors.New("pathsearch: days must be positive")

	// ErrUnknownBiome indicates a node whose biome index has no weight.
	ErrUnknownBiome = errors.New("pathsearch: biome index out of range")

	// ErrBadWeights indicates an empty biome weight table.
	ErrBadWeights = errors.New("pathsearch: biome weight table is empty")

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = errors.New("pathsearch: max expansions must be non-negative")
)

// VisitsPerDay converts days into the visit budget.
const VisitsPerDay = 3

// BiomeWeights maps a biome index to its score multiplier.
type BiomeWeights []float64

// DefaultBiomeWeights is the standard seven-biome table.
var DefaultBiomeWeights = BiomeWeights{1, 14, 28, 42, 57, 85, 100}

// Options configures a Search run.
//
// Weights       – biome weight table; DefaultBiomeWeights unless overridden.
// MaxExpansions – cap on frontier pops; 0 means unlimited.
// LengthPruning – skip extending partial paths that already fill the budget.
// Logger        – receives a debug summary per run.
type Options struct {
	Weights       BiomeWeights
	MaxExpansions int
	LengthPruning bool
	Logger        *zap.Logger

	// err records the first invalid option; surfaced by Search.
	err error
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - Weights:       DefaultBiomeWeights
//   - MaxExpansions: 0 (unlimited)
//   - LengthPruning: true
//   - Logger:        zap.NewNop()
func DefaultOptions() Options {
	return Options{
		Weights:       DefaultBiomeWeights,
		MaxExpansions: 0,
		LengthPruning: true,
		Logger:        zap.NewNop(),
	}
}

// WithBiomeWeights replaces the biome weight table. An empty table is
// rejected with ErrBadWeights when Search runs.
func WithBiomeWeights(w BiomeWeights) Option {
	return func(o *Options) {
		if len(w) == 0 {
			o.fail(ErrBadWeights)
			return
		}
		o.Weights = append(BiomeWeights(nil), w...)
	}
}

// WithMaxExpansions caps the number of partial paths taken off the frontier.
// Zero disables the cap; a negative value yields ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(ErrBadMaxExpansions)
			return
		}
		o.MaxExpansions = n
	}
}

// WithoutLengthPruning lets partial paths grow past the visit budget; the
// budget is then only checked when a path reaches the south pole.
func WithoutLengthPruning() Option {
	return func(o *Options) { o.LengthPruning = false }
}

// WithLogger routes the per-run summary to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
