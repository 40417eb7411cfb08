// Package series provides the validated, time-ordered price series the
// indicator, strategy and backtest packages operate on.
package series

import (
	"math"
	"time"

	"github.com/astrolab/astro-trading/internal/types"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// Undefined returns the sentinel used for undefined values in derived
// sequences (indicator warmup, the first percent change, etc.).
func Undefined() float64 {
	return math.NaN()
}

// IsUndefined reports whether v is the undefined sentinel.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// PriceSeries is an immutable, validated sequence of OHLCV observations with
// strictly increasing timestamps. Construct one with NewPriceSeries; derived
// artifacts (indicator columns, signals, backtest curves) are built alongside
// it, the series itself is never mutated.
type PriceSeries struct {
	bars []types.Bar
}

// NewPriceSeries validates bars and wraps them in a PriceSeries. It returns a
// DataIntegrityError if the input is empty, timestamps are not strictly
// increasing, or any close is non-positive. The bars slice is copied so later
// mutation of the caller's slice cannot corrupt the series.
func NewPriceSeries(bars []types.Bar) (*PriceSeries, error) {
	if len(bars) == 0 {
		return nil, errors.NewDataIntegrityError(errors.ErrCodeEmptySeries, 0, time.Time{}, "price series must not be empty")
	}

	for i, bar := range bars {
		if bar.Close <= 0 {
			return nil, errors.NewDataIntegrityErrorf(errors.ErrCodeNonPositiveClose, i, bar.Time,
				"close must be positive, got %v", bar.Close)
		}

		if i == 0 {
			continue
		}

		if bar.Time.Equal(bars[i-1].Time) {
			return nil, errors.NewDataIntegrityErrorf(errors.ErrCodeDuplicateTimestamp, i, bar.Time,
				"duplicate timestamp %s", bar.Time.Format(time.RFC3339))
		}

		if bar.Time.Before(bars[i-1].Time) {
			return nil, errors.NewDataIntegrityErrorf(errors.ErrCodeNonMonotonicTimestamp, i, bar.Time,
				"timestamp %s is not after previous %s",
				bar.Time.Format(time.RFC3339), bars[i-1].Time.Format(time.RFC3339))
		}
	}

	owned := make([]types.Bar, len(bars))
	copy(owned, bars)

	return &PriceSeries{bars: owned}, nil
}

// Len returns the number of observations.
func (s *PriceSeries) Len() int {
	return len(s.bars)
}

// Bar returns the observation at index i.
func (s *PriceSeries) Bar(i int) types.Bar {
	return s.bars[i]
}

// Time returns the timestamp at index i.
func (s *PriceSeries) Time(i int) time.Time {
	return s.bars[i].Time
}

// Close returns the close price at index i.
func (s *PriceSeries) Close(i int) float64 {
	return s.bars[i].Close
}

// Closes returns a fresh copy of the close prices.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.bars))
	for i, bar := range s.bars {
		closes[i] = bar.Close
	}

	return closes
}

// Times returns a fresh copy of the timestamps.
func (s *PriceSeries) Times() []time.Time {
	times := make([]time.Time, len(s.bars))
	for i, bar := range s.bars {
		times[i] = bar.Time
	}

	return times
}

// Slice returns the sub-series of observations with from <= timestamp <= to.
// It returns a DataIntegrityError with code ErrCodeEmptySeries when no
// observation falls inside the range; ordering is preserved so no
// revalidation is needed.
func (s *PriceSeries) Slice(from, to time.Time) (*PriceSeries, error) {
	lo := len(s.bars)

	for i, bar := range s.bars {
		if !bar.Time.Before(from) {
			lo = i

			break
		}
	}

	hi := lo
	for hi < len(s.bars) && !s.bars[hi].Time.After(to) {
		hi++
	}

	if lo == hi {
		return nil, errors.NewDataIntegrityErrorf(errors.ErrCodeEmptySeries, lo, from,
			"no observations between %s and %s", from.Format(time.RFC3339), to.Format(time.RFC3339))
	}

	owned := make([]types.Bar, hi-lo)
	copy(owned, s.bars[lo:hi])

	return &PriceSeries{bars: owned}, nil
}

// PercentChange returns the aligned sequence of one-period close returns:
// entry i is (close[i]-close[i-1])/close[i-1], undefined at i=0. The zero
// division case cannot occur because construction rejects non-positive closes.
func (s *PriceSeries) PercentChange() []float64 {
	changes := make([]float64, len(s.bars))
	changes[0] = Undefined()

	for i := 1; i < len(s.bars); i++ {
		prev := s.bars[i-1].Close
		changes[i] = (s.bars[i].Close - prev) / prev
	}

	return changes
}
