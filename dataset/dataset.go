// Package dataset provides descriptive statistics over a non-empty,
// one-dimensional sequence of numbers.
//
// A Dataset never modifies the slice it wraps; every operation returns a
// scalar or a freshly allocated slice.
package dataset

import (
	"fmt"
	gomath "math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/coleaeason/datastats/internal/math"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Dataset wraps an ordered, non-empty sequence of numbers.
type Dataset[T Number] struct {
	data []T
}

// New returns a Dataset over data. The slice is stored as-is, so callers
// must not mutate it while the Dataset is in use.
func New[T Number](data []T) (*Dataset[T], error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}
	return &Dataset[T]{data: data}, nil
}

// Len returns the number of values.
func (d *Dataset[T]) Len() int {
	return len(d.data)
}

// Values returns a copy of the stored values in their original order.
func (d *Dataset[T]) Values() []T {
	return slices.Clone(d.data)
}

func (d *Dataset[T]) floats() []float64 {
	out := make([]float64, len(d.data))
	for i, v := range d.data {
		out[i] = float64(v)
	}
	return out
}

// Mean returns the arithmetic mean.
func (d *Dataset[T]) Mean() float64 {
	return math.Average(d.floats())
}

// Median returns the middle value, or the average of the two middle values
// when the length is even.
func (d *Dataset[T]) Median() float64 {
	return math.Median(d.floats())
}

// Sum returns the total in the element type. Integer data is added exactly
// in 64 bits; ErrSumOverflow is returned when the total does not fit in T.
// Float data is accumulated in float64.
func (d *Dataset[T]) Sum() (T, error) {
	if isInteger[T]() {
		sum, ok := integerSum(d.data)
		if !ok {
			return 0, ErrSumOverflow
		}
		return sum, nil
	}
	var sum float64
	for _, v := range d.data {
		sum += float64(v)
	}
	return T(sum), nil
}

// Min returns the smallest value.
func (d *Dataset[T]) Min() T {
	return slices.Min(d.data)
}

// Max returns the largest value.
func (d *Dataset[T]) Max() T {
	return slices.Max(d.data)
}

// Variance returns the sample variance, or 0 for a single value.
func (d *Dataset[T]) Variance() float64 {
	return math.Variance(d.floats())
}

// StdDev returns the sample standard deviation, or 0 for a single value.
func (d *Dataset[T]) StdDev() float64 {
	return math.StdDev(d.floats())
}

// Percentile returns the nearest-rank p-th percentile, 0 < p <= 100.
func (d *Dataset[T]) Percentile(p float64) (float64, error) {
	if !(p > 0 && p <= 100) {
		return 0, fmt.Errorf("percentile %v: %w", p, ErrInvalidPercentile)
	}
	return math.Percentile(d.floats(), p)
}

// FilterGreaterThan returns, in original order, the values strictly greater
// than threshold. Integer values are compared exactly, so fractional
// thresholds work for integer data. The result is empty, not nil, when
// nothing matches.
func (d *Dataset[T]) FilterGreaterThan(threshold float64) []T {
	out := make([]T, 0, len(d.data))
	for _, v := range d.data {
		if greater(v, threshold) {
			out = append(out, v)
		}
	}
	return out
}

// Normalize rescales every value to [0, 1] using min-max scaling, keeping
// the original order. It returns ErrZeroRange when all values are equal.
func (d *Dataset[T]) Normalize() ([]float64, error) {
	lo, hi := d.Min(), d.Max()
	if lo == hi {
		return nil, ErrZeroRange
	}
	out := make([]float64, len(d.data))
	if isInteger[T]() {
		span := distance(hi, lo)
		for i, v := range d.data {
			out[i] = distance(v, lo) / span
		}
		return out, nil
	}
	flo, fhi := float64(lo), float64(hi)
	scale := 1.0
	if gomath.IsInf(fhi-flo, 1) {
		scale = 0.5
	}
	span := fhi*scale - flo*scale
	for i, v := range d.data {
		out[i] = (float64(v)*scale - flo*scale) / span
	}
	return out, nil
}
