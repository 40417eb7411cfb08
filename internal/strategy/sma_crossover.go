package strategy

import (
	"github.com/astrolab/astro-trading/internal/indicator"
	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/internal/types"
)

// SmaCrossover signals long while the fast SMA is above the slow SMA and
// short while it is below. Equal values and undefined warmup entries are flat.
type SmaCrossover struct{}

// NewSmaCrossover creates the SMA crossover strategy.
func NewSmaCrossover() Strategy {
	return &SmaCrossover{}
}

// Name returns the registry identifier of the strategy.
func (s *SmaCrossover) Name() string {
	return StrategySmaCrossover
}

// RequiredIndicators resolves the fast and slow SMA instances for cfg
// through the indicator registry.
func (s *SmaCrossover) RequiredIndicators(cfg Config) ([]indicator.Indicator, error) {
	fast, err := indicator.CreateIndicator(types.IndicatorTypeSMA, cfg.FastWindow)
	if err != nil {
		return nil, err
	}

	slow, err := indicator.CreateIndicator(types.IndicatorTypeSMA, cfg.SlowWindow)
	if err != nil {
		return nil, err
	}

	return []indicator.Indicator{fast, slow}, nil
}

// Generate builds the crossover signal series index by index.
func (s *SmaCrossover) Generate(set *indicator.Set, cfg Config) (types.SignalSeries, error) {
	required, err := s.RequiredIndicators(cfg)
	if err != nil {
		return nil, err
	}

	fast, err := set.Column(required[0].ColumnName())
	if err != nil {
		return nil, err
	}

	slow, err := set.Column(required[1].ColumnName())
	if err != nil {
		return nil, err
	}

	signals := make(types.SignalSeries, set.Len())

	for i := range signals {
		if series.IsUndefined(fast[i]) || series.IsUndefined(slow[i]) {
			signals[i] = types.PositionFlat

			continue
		}

		switch {
		case fast[i] > slow[i]:
			signals[i] = types.PositionLong
		case fast[i] < slow[i]:
			signals[i] = types.PositionShort
		default:
			signals[i] = types.PositionFlat
		}
	}

	return signals, nil
}
