package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

type PriceSeriesTestSuite struct {
	suite.Suite
}

func TestPriceSeriesSuite(t *testing.T) {
	suite.Run(t, new(PriceSeriesTestSuite))
}

func dailyBars(closes ...float64) []types.Bar {
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

	return bars
}

func (suite *PriceSeriesTestSuite) TestNewPriceSeries() {
	s, err := NewPriceSeries(dailyBars(100, 102, 101))
	suite.NoError(err)
	suite.Equal(3, s.Len())
	suite.Equal(102.0, s.Close(1))
	suite.Equal(101.0, s.Bar(2).Close)
}

func (suite *PriceSeriesTestSuite) TestEmptyInputRejected() {
	_, err := NewPriceSeries(nil)
	suite.Error(err)
	suite.True(errors.IsDataIntegrityError(err))

	var integrityErr *errors.DataIntegrityError
	suite.True(errors.As(err, &integrityErr))
	suite.Equal(errors.ErrCodeEmptySeries, integrityErr.Code)
}

func (suite *PriceSeriesTestSuite) TestNonMonotonicTimestampRejected() {
	bars := dailyBars(100, 101, 102)
	bars[2].Time = bars[0].Time.Add(-24 * time.Hour)

	_, err := NewPriceSeries(bars)
	suite.Error(err)

	var integrityErr *errors.DataIntegrityError
	suite.True(errors.As(err, &integrityErr))
	suite.Equal(errors.ErrCodeNonMonotonicTimestamp, integrityErr.Code)
	suite.Equal(2, integrityErr.Index)
	suite.Equal(bars[2].Time, integrityErr.Timestamp)
}

func (suite *PriceSeriesTestSuite) TestDuplicateTimestampRejected() {
	bars := dailyBars(100, 101)
	bars[1].Time = bars[0].Time

	_, err := NewPriceSeries(bars)
	suite.Error(err)

	var integrityErr *errors.DataIntegrityError
	suite.True(errors.As(err, &integrityErr))
	suite.Equal(errors.ErrCodeDuplicateTimestamp, integrityErr.Code)
	suite.Equal(1, integrityErr.Index)
}

func (suite *PriceSeriesTestSuite) TestNonPositiveCloseRejected() {
	bars := dailyBars(100, 101, 102)
	bars[1].Close = 0

	_, err := NewPriceSeries(bars)
	suite.Error(err)

	var integrityErr *errors.DataIntegrityError
	suite.True(errors.As(err, &integrityErr))
	suite.Equal(errors.ErrCodeNonPositiveClose, integrityErr.Code)
	suite.Equal(1, integrityErr.Index)
}

func (suite *PriceSeriesTestSuite) TestImmutableAgainstCallerMutation() {
	bars := dailyBars(100, 101)
	s, err := NewPriceSeries(bars)
	suite.NoError(err)

	bars[0].Close = -5
	suite.Equal(100.0, s.Close(0))

	closes := s.Closes()
	closes[1] = 0
	suite.Equal(101.0, s.Close(1))
}

func (suite *PriceSeriesTestSuite) TestPercentChange() {
	s, err := NewPriceSeries(dailyBars(100, 102, 51))
	suite.NoError(err)

	changes := s.PercentChange()
	suite.Len(changes, 3)
	suite.True(IsUndefined(changes[0]))
	suite.InDelta(0.02, changes[1], 1e-12)
	suite.InDelta(-0.5, changes[2], 1e-12)
}

func (suite *PriceSeriesTestSuite) TestSlice() {
	s, err := NewPriceSeries(dailyBars(100, 101, 102, 103, 104))
	suite.NoError(err)

	from := s.Time(1)
	to := s.Time(3)

	sub, err := s.Slice(from, to)
	suite.NoError(err)
	suite.Equal(3, sub.Len())
	suite.Equal(101.0, sub.Close(0))
	suite.Equal(103.0, sub.Close(2))
}

func (suite *PriceSeriesTestSuite) TestSliceEmptyRange() {
	s, err := NewPriceSeries(dailyBars(100, 101))
	suite.NoError(err)

	from := s.Time(1).AddDate(1, 0, 0)
	to := from.AddDate(0, 0, 5)

	_, err = s.Slice(from, to)
	suite.Error(err)
	suite.True(errors.IsDataIntegrityError(err))
}

func (suite *PriceSeriesTestSuite) TestUndefinedSentinel() {
	v := Undefined()
	suite.True(IsUndefined(v))
	suite.False(IsUndefined(0))
	suite.False(IsUndefined(100))
}
