package indicator

import (
	"fmt"

	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/internal/types"
)

// RSI implements the Relative Strength Index over rolling mean gains and
// losses. Gains and losses are simple rolling means of the close deltas, not
// Wilder-smoothed averages, so the oscillator reacts within `period` bars.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() Indicator {
	return &RSI{
		period: 14, // Default period
	}
}

// NewRSIWithPeriod creates an RSI indicator for the given period.
func NewRSIWithPeriod(period int) (Indicator, error) {
	rsi := &RSI{period: 0}
	if err := rsi.Config(period); err != nil {
		return nil, err
	}

	return rsi, nil
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// ColumnName returns the parameterized column name, e.g. "RSI_14".
func (r *RSI) ColumnName() string {
	return fmt.Sprintf("RSI_%d", r.period)
}

// Config configures the RSI indicator. Expected parameters: period (int).
func (r *RSI) Config(params ...any) error {
	if len(params) != 1 {
		return fmt.Errorf("Config expects 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		periodFloat, ok := params[0].(float64)
		if !ok {
			return fmt.Errorf("invalid type for period parameter, expected int or float")
		}

		period = int(periodFloat)
	}

	if period <= 0 {
		return fmt.Errorf("period must be a positive integer, got %d", period)
	}

	r.period = period

	return nil
}

// MinBars returns the minimum series length for the first defined value.
// RSI needs `period` deltas, so period+1 bars.
func (r *RSI) MinBars() int {
	return r.period + 1
}

// Compute returns the aligned RSI column. Values are defined from index
// `period` onward and always lie in [0, 100]:
//   - loss mean == 0 with gains present means an uninterrupted uptrend, RSI 100
//   - gain mean == 0 and loss mean == 0 means an unchanged price window; the
//     ratio is 0/0, and RSI is pinned to the neutral 50 rather than NaN
func (r *RSI) Compute(ps *series.PriceSeries) []float64 {
	n := ps.Len()
	values := make([]float64, n)

	for i := range values {
		values[i] = series.Undefined()
	}

	if n < r.MinBars() {
		return values
	}

	gains := make([]float64, n)
	losses := make([]float64, n)

	for i := 1; i < n; i++ {
		delta := ps.Close(i) - ps.Close(i-1)
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	gainSum := 0.0
	lossSum := 0.0

	for i := 1; i < n; i++ {
		gainSum += gains[i]
		lossSum += losses[i]

		if i > r.period {
			gainSum -= gains[i-r.period]
			lossSum -= losses[i-r.period]
		}

		if i < r.period {
			continue
		}

		avgGain := gainSum / float64(r.period)
		avgLoss := lossSum / float64(r.period)

		switch {
		case avgLoss == 0 && avgGain == 0:
			values[i] = 50
		case avgLoss == 0:
			values[i] = 100
		default:
			rs := avgGain / avgLoss
			values[i] = 100 - 100/(1+rs)
		}
	}

	return values
}
