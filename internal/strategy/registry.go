package strategy

import (
	"sync"

	"github.com/astrolab/astro-trading/internal/indicator"
	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// Registry maps strategy identifiers to strategy implementations and
// validates a configuration against an actual price series before any
// computation is attempted.
type Registry struct {
	strategies map[string]Strategy
	mu         sync.RWMutex
}

// NewRegistry creates a registry preloaded with the built-in strategies.
func NewRegistry() *Registry {
	registry := &Registry{
		strategies: make(map[string]Strategy),
		mu:         sync.RWMutex{},
	}

	registry.register(NewSmaCrossover())
	registry.register(NewRsiThreshold())
	registry.register(NewCombined())

	return registry
}

func (r *Registry) register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.strategies[s.Name()] = s
}

// Get retrieves a strategy by name. An unrecognized name is an
// ErrCodeUnsupportedStrategy error.
func (r *Registry) Get(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strat, exists := r.strategies[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeUnsupportedStrategy, "Get: unsupported strategy %q", name)
	}

	return strat, nil
}

// List returns the registered strategy names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}

	return names
}

// Validate checks cfg against the registry and the series length, failing
// fast before any computation: the strategy must exist, the configuration
// must be well formed, and every required indicator must have at least one
// defined value for a series of the given length. The insufficient-history
// case carries an InsufficientHistoryError cause under the
// ErrCodeUnsupportedStrategy code.
func (r *Registry) Validate(cfg Config, seriesLen int, symbol string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	strat, err := r.Get(cfg.Name)
	if err != nil {
		return err
	}

	indicators, err := strat.RequiredIndicators(cfg)
	if err != nil {
		return err
	}

	for _, ind := range indicators {
		if seriesLen < ind.MinBars() {
			cause := errors.NewInsufficientHistoryErrorf(ind.MinBars(), seriesLen, symbol,
				"indicator %s needs %d bars, series has %d", ind.ColumnName(), ind.MinBars(), seriesLen)

			return errors.Wrapf(errors.ErrCodeUnsupportedStrategy, cause,
				"strategy %q is not computable for this series", cfg.Name)
		}
	}

	return nil
}

// Evaluate validates cfg, computes the required indicator columns and
// generates the signal series in one pass.
func (r *Registry) Evaluate(ps *series.PriceSeries, cfg Config) (*indicator.Set, types.SignalSeries, error) {
	if err := r.Validate(cfg, ps.Len(), ""); err != nil {
		return nil, nil, err
	}

	strat, err := r.Get(cfg.Name)
	if err != nil {
		return nil, nil, err
	}

	indicators, err := strat.RequiredIndicators(cfg)
	if err != nil {
		return nil, nil, err
	}

	set := indicator.Build(ps, indicators...)

	signals, err := strat.Generate(set, cfg)
	if err != nil {
		return nil, nil, err
	}

	return set, signals, nil
}
