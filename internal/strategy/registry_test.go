package strategy

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/pkg/errors"
)

type StrategyRegistryTestSuite struct {
	suite.Suite
	registry *Registry
}

func TestStrategyRegistrySuite(t *testing.T) {
	suite.Run(t, new(StrategyRegistryTestSuite))
}

func (suite *StrategyRegistryTestSuite) SetupTest() {
	suite.registry = NewRegistry()
}

func (suite *StrategyRegistryTestSuite) TestListBuiltins() {
	suite.ElementsMatch(
		[]string{StrategySmaCrossover, StrategyRsiThreshold, StrategyCombined},
		suite.registry.List(),
	)
}

func (suite *StrategyRegistryTestSuite) TestGetUnsupported() {
	_, err := suite.registry.Get("momentum")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedStrategy))
}

func (suite *StrategyRegistryTestSuite) TestValidateUnknownName() {
	cfg := DefaultConfig("momentum")

	err := suite.registry.Validate(cfg, 500, "AAPL")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedStrategy))
}

func (suite *StrategyRegistryTestSuite) TestValidateBadThresholds() {
	cfg := DefaultConfig(StrategyRsiThreshold)
	cfg.RSILower = 70
	cfg.RSIUpper = 30

	err := suite.registry.Validate(cfg, 500, "AAPL")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyConfigError))
}

func (suite *StrategyRegistryTestSuite) TestValidateInsufficientHistory() {
	// Default slow window is 200 bars; a 50-bar series must be rejected
	// before any computation, carrying the required/actual counts.
	cfg := DefaultConfig(StrategySmaCrossover)

	err := suite.registry.Validate(cfg, 50, "AAPL")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnsupportedStrategy))
	suite.True(errors.IsInsufficientHistoryError(err))

	var insufficientErr *errors.InsufficientHistoryError
	suite.True(errors.As(err, &insufficientErr))
	suite.Equal(200, insufficientErr.Required)
	suite.Equal(50, insufficientErr.Actual)
	suite.Equal("AAPL", insufficientErr.Symbol)
}

func (suite *StrategyRegistryTestSuite) TestValidateOK() {
	cfg := DefaultConfig(StrategySmaCrossover)
	suite.NoError(suite.registry.Validate(cfg, 200, "AAPL"))
}

func (suite *StrategyRegistryTestSuite) TestEvaluate() {
	ps := seriesFromCloses(&suite.Suite, 1, 2, 3, 4, 10)

	cfg := DefaultConfig(StrategySmaCrossover)
	cfg.FastWindow = 2
	cfg.SlowWindow = 3

	set, signals, err := suite.registry.Evaluate(ps, cfg)
	suite.NoError(err)
	suite.Equal(ps.Len(), set.Len())
	suite.Len(signals, ps.Len())
	suite.True(set.Has("SMA_2"))
	suite.True(set.Has("SMA_3"))
}

func (suite *StrategyRegistryTestSuite) TestEvaluateIdempotent() {
	// Running the same evaluation twice must yield exactly equal artifacts.
	ps := seriesFromCloses(&suite.Suite, 100, 102, 101, 105, 103, 99, 98, 120)

	cfg := DefaultConfig(StrategyCombined)
	cfg.FastWindow = 2
	cfg.SlowWindow = 3
	cfg.RSIPeriod = 2

	firstSet, firstSignals, err := suite.registry.Evaluate(ps, cfg)
	suite.NoError(err)

	secondSet, secondSignals, err := suite.registry.Evaluate(ps, cfg)
	suite.NoError(err)

	suite.Equal(firstSignals, secondSignals)
	suite.Equal(firstSet.ColumnNames(), secondSet.ColumnNames())

	for _, name := range firstSet.ColumnNames() {
		firstColumn, err := firstSet.Column(name)
		suite.NoError(err)
		secondColumn, err := secondSet.Column(name)
		suite.NoError(err)

		suite.Len(secondColumn, len(firstColumn))

		for i := range firstColumn {
			if series.IsUndefined(firstColumn[i]) {
				suite.True(series.IsUndefined(secondColumn[i]))

				continue
			}

			suite.Equal(firstColumn[i], secondColumn[i])
		}
	}
}
