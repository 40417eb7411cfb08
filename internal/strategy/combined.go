package strategy

import (
	"github.com/astrolab/astro-trading/internal/indicator"
	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// Combined sums the per-index sub-signals of its contributing strategies and
// normalizes the score to its sign. The combination saturates: agreeing
// sub-strategies never stack beyond one unit of position.
type Combined struct {
	subs map[string]Strategy
}

// NewCombined creates the combined strategy over the two leaf strategies.
func NewCombined() Strategy {
	return &Combined{
		subs: map[string]Strategy{
			StrategySmaCrossover: NewSmaCrossover(),
			StrategyRsiThreshold: NewRsiThreshold(),
		},
	}
}

// Name returns the registry identifier of the strategy.
func (c *Combined) Name() string {
	return StrategyCombined
}

func (c *Combined) contributing(cfg Config) ([]Strategy, error) {
	names := cfg.Combine
	if len(names) == 0 {
		names = []string{StrategySmaCrossover, StrategyRsiThreshold}
	}

	subs := make([]Strategy, 0, len(names))

	for _, name := range names {
		sub, exists := c.subs[name]
		if !exists {
			return nil, errors.Newf(errors.ErrCodeUnsupportedStrategy, "combined: unsupported sub-strategy %q", name)
		}

		subs = append(subs, sub)
	}

	return subs, nil
}

// RequiredIndicators returns the union of the contributing strategies' indicators.
func (c *Combined) RequiredIndicators(cfg Config) ([]indicator.Indicator, error) {
	subs, err := c.contributing(cfg)
	if err != nil {
		return nil, err
	}

	var indicators []indicator.Indicator

	seen := make(map[string]bool)

	for _, sub := range subs {
		required, err := sub.RequiredIndicators(cfg)
		if err != nil {
			return nil, err
		}

		for _, ind := range required {
			if seen[ind.ColumnName()] {
				continue
			}

			seen[ind.ColumnName()] = true
			indicators = append(indicators, ind)
		}
	}

	return indicators, nil
}

// Generate sums the sub-signals per index and normalizes to sign.
func (c *Combined) Generate(set *indicator.Set, cfg Config) (types.SignalSeries, error) {
	subs, err := c.contributing(cfg)
	if err != nil {
		return nil, err
	}

	scores := make([]int, set.Len())

	for _, sub := range subs {
		signals, err := sub.Generate(set, cfg)
		if err != nil {
			return nil, err
		}

		for i, signal := range signals {
			scores[i] += int(signal)
		}
	}

	combined := make(types.SignalSeries, set.Len())
	for i, score := range scores {
		combined[i] = types.Sign(score)
	}

	return combined, nil
}
