package indicator

import (
	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/internal/types"
)

// Indicator interface defines methods that any technical indicator must implement.
//
// Compute returns a full column aligned to the input series: one value per
// bar, with series.Undefined() for warmup indices. The value at index i
// depends only on bars at indices <= i. A series shorter than the warmup
// yields an all-undefined column, never an error; Compute is a pure function
// of the series.
type Indicator interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// ColumnName returns the parameterized column name, e.g. "SMA_50" or "RSI_14"
	ColumnName() string
	// Config configures the indicator parameters
	Config(params ...any) error
	// MinBars returns the minimum series length for the first defined value
	MinBars() int
	// Compute returns the aligned indicator column for the series
	Compute(s *series.PriceSeries) []float64
}
