// Package backtest compounds realized one-period returns under a signal
// series into cumulative strategy and market return curves.
package backtest

import (
	"time"

	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// Result holds the two cumulative return curves, indexed identically to the
// price series the backtest ran over. Both curves start at 0: there is no
// realized return before the first period.
type Result struct {
	Times    []time.Time
	Strategy []float64
	Market   []float64
}

// FinalStrategyReturn returns the last point of the cumulative strategy curve.
func (r *Result) FinalStrategyReturn() float64 {
	return r.Strategy[len(r.Strategy)-1]
}

// FinalMarketReturn returns the last point of the cumulative market curve.
func (r *Result) FinalMarketReturn() float64 {
	return r.Market[len(r.Market)-1]
}

// Len returns the number of points in the curves.
func (r *Result) Len() int {
	return len(r.Times)
}

// Run backtests the signal series against the price series.
//
// The strategy return at index i realizes the signal established at index
// i-1: a signal decided at the close is only tradable from the next period,
// so no return is realized on the first bar. Cumulative curves compound
// geometrically: cum[i] = prod(1+r[k], k<=i) - 1. Signals outside {-1,0,+1}
// cannot occur by construction of SignalSeries; the undefined market return
// at index 0 contributes a zero return to both curves.
func Run(ps *series.PriceSeries, signals types.SignalSeries) (*Result, error) {
	if len(signals) != ps.Len() {
		return nil, errors.Newf(errors.ErrCodeSignalLengthMismatch,
			"Run: signal series has %d entries, price series has %d", len(signals), ps.Len())
	}

	n := ps.Len()
	changes := ps.PercentChange()

	result := &Result{
		Times:    ps.Times(),
		Strategy: make([]float64, n),
		Market:   make([]float64, n),
	}

	strategyGrowth := 1.0
	marketGrowth := 1.0

	for i := 0; i < n; i++ {
		marketReturn := 0.0
		if i > 0 && !series.IsUndefined(changes[i]) {
			marketReturn = changes[i]
		}

		strategyReturn := 0.0
		if i > 0 {
			strategyReturn = float64(signals[i-1]) * marketReturn
		}

		strategyGrowth *= 1 + strategyReturn
		marketGrowth *= 1 + marketReturn

		result.Strategy[i] = strategyGrowth - 1
		result.Market[i] = marketGrowth - 1
	}

	return result, nil
}
