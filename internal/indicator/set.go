package indicator

import (
	"github.com/astrolab/astro-trading/internal/series"
	"github.com/astrolab/astro-trading/pkg/errors"
)

// Set holds named indicator columns computed from one price series. Every
// column has the same length as the series; the Set is lifetime-bound to the
// series it was computed from and never mutates it.
type Set struct {
	series  *series.PriceSeries
	names   []string
	columns map[string][]float64
}

// NewSet creates an empty indicator set bound to the given series.
func NewSet(ps *series.PriceSeries) *Set {
	return &Set{
		series:  ps,
		names:   nil,
		columns: make(map[string][]float64),
	}
}

// Build computes each indicator against the series and returns the populated
// set. Indicators producing the same column name are computed once.
func Build(ps *series.PriceSeries, indicators ...Indicator) *Set {
	set := NewSet(ps)
	for _, ind := range indicators {
		if set.Has(ind.ColumnName()) {
			continue
		}

		set.add(ind.ColumnName(), ind.Compute(ps))
	}

	return set
}

// Series returns the price series this set was computed from.
func (s *Set) Series() *series.PriceSeries {
	return s.series
}

// Len returns the number of rows, which always equals the series length.
func (s *Set) Len() int {
	return s.series.Len()
}

// ColumnNames returns the column names in insertion order.
func (s *Set) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)

	return names
}

// Has reports whether a column with the given name exists.
func (s *Set) Has(name string) bool {
	_, exists := s.columns[name]

	return exists
}

// Column returns the aligned values for the named column.
func (s *Set) Column(name string) ([]float64, error) {
	values, exists := s.columns[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "Column: no indicator column named %s", name)
	}

	return values, nil
}

// Value returns the named column's value at index i.
func (s *Set) Value(name string, i int) (float64, error) {
	values, err := s.Column(name)
	if err != nil {
		return 0, err
	}

	return values[i], nil
}

func (s *Set) add(name string, values []float64) {
	s.names = append(s.names, name)
	s.columns[name] = values
}
