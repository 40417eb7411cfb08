package indicator

import (
	"fmt"

	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/internal/types"
)

// SMA implements the Simple Moving Average over a trailing close window.
type SMA struct {
	window int
}

// NewSMA creates a new SMA indicator with default configuration.
func NewSMA() Indicator {
	return &SMA{
		window: 50, // Default window
	}
}

// NewSMAWithWindow creates an SMA indicator for the given window size.
func NewSMAWithWindow(window int) (Indicator, error) {
	sma := &SMA{window: 0}
	if err := sma.Config(window); err != nil {
		return nil, err
	}

	return sma, nil
}

// Name returns the name of the indicator.
func (s *SMA) Name() types.IndicatorType {
	return types.IndicatorTypeSMA
}

// ColumnName returns the parameterized column name, e.g. "SMA_50".
func (s *SMA) ColumnName() string {
	return fmt.Sprintf("SMA_%d", s.window)
}

// Config configures the SMA indicator. Expected parameters: window (int).
func (s *SMA) Config(params ...any) error {
	if len(params) != 1 {
		return fmt.Errorf("Config expects 1 parameter: window (int)")
	}

	window, ok := params[0].(int)
	if !ok {
		// Try to convert to float first
		windowFloat, ok := params[0].(float64)
		if !ok {
			return fmt.Errorf("invalid type for window parameter, expected int or float")
		}

		window = int(windowFloat)
	}

	if window <= 0 {
		return fmt.Errorf("window must be a positive integer, got %d", window)
	}

	s.window = window

	return nil
}

// MinBars returns the minimum series length for the first defined value.
func (s *SMA) MinBars() int {
	return s.window
}

// Compute returns the aligned SMA column. The first window-1 entries are
// undefined; a series shorter than the window is all-undefined.
func (s *SMA) Compute(ps *series.PriceSeries) []float64 {
	n := ps.Len()
	values := make([]float64, n)

	sum := 0.0

	for i := 0; i < n; i++ {
		sum += ps.Close(i)
		if i >= s.window {
			sum -= ps.Close(i - s.window)
		}

		if i >= s.window-1 {
			values[i] = sum / float64(s.window)
		} else {
			values[i] = series.Undefined()
		}
	}

	return values
}
