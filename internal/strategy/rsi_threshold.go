package strategy

import (
	"github.com/astrolab/astro-trading/internal/indicator"
	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/internal/types"
)

// RsiThreshold signals long when RSI drops below the oversold threshold and
// short when it rises above the overbought threshold. Everything else,
// including undefined warmup entries, is flat.
type RsiThreshold struct{}

// NewRsiThreshold creates the RSI threshold strategy.
func NewRsiThreshold() Strategy {
	return &RsiThreshold{}
}

// Name returns the registry identifier of the strategy.
func (r *RsiThreshold) Name() string {
	return StrategyRsiThreshold
}

// RequiredIndicators resolves the RSI instance for cfg through the
// indicator registry.
func (r *RsiThreshold) RequiredIndicators(cfg Config) ([]indicator.Indicator, error) {
	rsi, err := indicator.CreateIndicator(types.IndicatorTypeRSI, cfg.RSIPeriod)
	if err != nil {
		return nil, err
	}

	return []indicator.Indicator{rsi}, nil
}

// Generate builds the threshold signal series index by index.
func (r *RsiThreshold) Generate(set *indicator.Set, cfg Config) (types.SignalSeries, error) {
	required, err := r.RequiredIndicators(cfg)
	if err != nil {
		return nil, err
	}

	rsi, err := set.Column(required[0].ColumnName())
	if err != nil {
		return nil, err
	}

	signals := make(types.SignalSeries, set.Len())

	for i := range signals {
		if series.IsUndefined(rsi[i]) {
			signals[i] = types.PositionFlat

			continue
		}

		switch {
		case rsi[i] < cfg.RSILower:
			signals[i] = types.PositionLong // oversold
		case rsi[i] > cfg.RSIUpper:
			signals[i] = types.PositionShort // overbought
		default:
			signals[i] = types.PositionFlat
		}
	}

	return signals, nil
}
