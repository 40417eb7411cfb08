package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

type BacktestTestSuite struct {
	suite.Suite
}

func TestBacktestSuite(t *testing.T) {
	suite.Run(t, new(BacktestTestSuite))
}

func seriesFromCloses(t *suite.Suite, closes ...float64) *series.PriceSeries {
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]types.Bar, len(closes))

	for i, c := range closes {
		bars[i] = types.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}

	ps, err := series.NewPriceSeries(bars)
	t.Require().NoError(err)

	return ps
}

func allSignals(n int, p types.Position) types.SignalSeries {
	signals := make(types.SignalSeries, n)
	for i := range signals {
		signals[i] = p
	}

	return signals
}

func (suite *BacktestTestSuite) TestLengthMismatch() {
	ps := seriesFromCloses(&suite.Suite, 100, 101)

	_, err := Run(ps, allSignals(3, types.PositionLong))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeSignalLengthMismatch))
}

func (suite *BacktestTestSuite) TestCurvesStartAtZero() {
	ps := seriesFromCloses(&suite.Suite, 100, 110, 121)

	result, err := Run(ps, allSignals(3, types.PositionLong))
	suite.NoError(err)
	suite.Equal(0.0, result.Strategy[0])
	suite.Equal(0.0, result.Market[0])
}

func (suite *BacktestTestSuite) TestAlwaysLongTracksMarket() {
	// With a constant long signal the strategy curve equals the market curve:
	// the one-bar lag is invisible because the lagged signal is also long.
	ps := seriesFromCloses(&suite.Suite, 100, 110, 99, 108.9)

	result, err := Run(ps, allSignals(4, types.PositionLong))
	suite.NoError(err)

	for i := range result.Strategy {
		suite.InDelta(result.Market[i], result.Strategy[i], 1e-12, "index %d", i)
	}

	// Market: +10%, -10%, +10% compounds to 1.1*0.9*1.1 - 1 = 0.089.
	suite.InDelta(0.089, result.FinalMarketReturn(), 1e-12)
}

func (suite *BacktestTestSuite) TestOneBarLag() {
	// Signal goes long only at index 1; the +50% move from index 1 to 2
	// realizes under that signal, but the +100% move from index 0 to 1 does
	// not -- there is no prior signal.
	ps := seriesFromCloses(&suite.Suite, 100, 200, 300, 300)
	signals := types.SignalSeries{
		types.PositionFlat,
		types.PositionLong,
		types.PositionFlat,
		types.PositionFlat,
	}

	result, err := Run(ps, signals)
	suite.NoError(err)

	suite.Equal(0.0, result.Strategy[0])
	suite.Equal(0.0, result.Strategy[1]) // lagged signal at index 0 is flat
	suite.InDelta(0.5, result.Strategy[2], 1e-12)
	suite.InDelta(0.5, result.Strategy[3], 1e-12) // flat afterwards, curve holds
}

func (suite *BacktestTestSuite) TestShortProfitsFromDecline() {
	ps := seriesFromCloses(&suite.Suite, 100, 100, 90)

	result, err := Run(ps, allSignals(3, types.PositionShort))
	suite.NoError(err)
	suite.InDelta(0.1, result.FinalStrategyReturn(), 1e-12)
	suite.InDelta(-0.1, result.FinalMarketReturn(), 1e-12)
}

func (suite *BacktestTestSuite) TestCompoundingMatchesDirectProduct() {
	closes := []float64{100, 102, 101, 105, 103, 99, 98, 120, 80, 81}
	ps := seriesFromCloses(&suite.Suite, closes...)
	signals := types.SignalSeries{1, -1, 0, 1, 1, -1, 0, 1, -1, 1}

	result, err := Run(ps, signals)
	suite.NoError(err)

	changes := ps.PercentChange()

	strategyProduct := 1.0
	marketProduct := 1.0

	for i := 1; i < len(closes); i++ {
		strategyProduct *= 1 + float64(signals[i-1])*changes[i]
		marketProduct *= 1 + changes[i]

		suite.InDelta(strategyProduct-1, result.Strategy[i], 1e-12, "strategy index %d", i)
		suite.InDelta(marketProduct-1, result.Market[i], 1e-12, "market index %d", i)
	}
}

func (suite *BacktestTestSuite) TestConstantPriceAllZero() {
	// close all equal: market returns are all 0, so both cumulative curves
	// stay at 0 regardless of the signal sequence.
	ps := seriesFromCloses(&suite.Suite, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50)
	signals := types.SignalSeries{1, -1, 1, -1, 0, 0, 1, 1, -1, -1}

	result, err := Run(ps, signals)
	suite.NoError(err)

	for i := 0; i < result.Len(); i++ {
		suite.Equal(0.0, result.Strategy[i], "strategy index %d", i)
		suite.Equal(0.0, result.Market[i], "market index %d", i)
	}
}

func (suite *BacktestTestSuite) TestIdempotent() {
	ps := seriesFromCloses(&suite.Suite, 100, 102, 101, 105, 103)
	signals := types.SignalSeries{0, 1, 1, -1, 0}

	first, err := Run(ps, signals)
	suite.NoError(err)

	second, err := Run(ps, signals)
	suite.NoError(err)

	suite.Equal(first, second)
}
