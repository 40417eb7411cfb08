package strategy

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/astrolab/astro-trading/internal/types"
)

type RsiThresholdTestSuite struct {
	suite.Suite
}

func TestRsiThresholdSuite(t *testing.T) {
	suite.Run(t, new(RsiThresholdTestSuite))
}

func (suite *RsiThresholdTestSuite) TestName() {
	suite.Equal(StrategyRsiThreshold, NewRsiThreshold().Name())
}

func (suite *RsiThresholdTestSuite) TestRequiredIndicators() {
	cfg := DefaultConfig(StrategyRsiThreshold)

	indicators, err := NewRsiThreshold().RequiredIndicators(cfg)
	suite.NoError(err)
	suite.Len(indicators, 1)
	suite.Equal("RSI_14", indicators[0].ColumnName())
}

func (suite *RsiThresholdTestSuite) TestThresholds() {
	// close = [100, 102, 101, 105, 103], RSI period 2 gives
	// RSI = [_, _, 66.67, 80.0, 66.67]. With thresholds 30/70 only index 3 is
	// overbought; warmup indices are flat.
	ps := seriesFromCloses(&suite.Suite, 100, 102, 101, 105, 103)

	cfg := DefaultConfig(StrategyRsiThreshold)
	cfg.RSIPeriod = 2

	signals := evaluate(&suite.Suite, NewRsiThreshold(), ps, cfg)
	expected := types.SignalSeries{
		types.PositionFlat,
		types.PositionFlat,
		types.PositionFlat,
		types.PositionShort,
		types.PositionFlat,
	}
	suite.Equal(expected, signals)
}

func (suite *RsiThresholdTestSuite) TestOversoldLong() {
	// A steady downtrend pins RSI at 0, below the oversold threshold.
	ps := seriesFromCloses(&suite.Suite, 10, 9, 8, 7, 6, 5)

	cfg := DefaultConfig(StrategyRsiThreshold)
	cfg.RSIPeriod = 2

	signals := evaluate(&suite.Suite, NewRsiThreshold(), ps, cfg)
	for i := 2; i < len(signals); i++ {
		suite.Equal(types.PositionLong, signals[i], "index %d should be long", i)
	}
}

func (suite *RsiThresholdTestSuite) TestNeutralBandFlat() {
	// Constant prices give the neutral RSI of 50, inside the band.
	ps := seriesFromCloses(&suite.Suite, 50, 50, 50, 50, 50, 50)

	cfg := DefaultConfig(StrategyRsiThreshold)
	cfg.RSIPeriod = 2

	signals := evaluate(&suite.Suite, NewRsiThreshold(), ps, cfg)
	for i, signal := range signals {
		suite.Equal(types.PositionFlat, signal, "index %d should be flat", i)
	}
}
