// Package strategy maps indicator columns to discrete position signals.
//
// Each strategy is a pure function of an indicator set and a configuration:
// signals are built index by index into a fresh SignalSeries, no strategy
// holds mutable state between evaluations.
package strategy

import (
	"github.com/astrolab/astro-trading/internal/indicator"
	"github.com/astrolab/astro-trading/internal/types"
)

// Strategy derives a per-bar signal series from computed indicator columns.
type Strategy interface {
	// Name returns the registry identifier of the strategy
	Name() string
	// RequiredIndicators returns the configured indicator instances this
	// strategy reads; the caller computes them into the Set passed to Generate
	RequiredIndicators(cfg Config) ([]indicator.Indicator, error)
	// Generate produces a signal series of the same length as the set's series
	Generate(set *indicator.Set, cfg Config) (types.SignalSeries, error)
}
