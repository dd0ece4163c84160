package math

import (
	gomath "math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Average calculates the arithmetic mean of a slice of float64 values
func Average(values []float64) float64 {
	avg, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return avg
}

// Median calculates the median value of a slice of float64 values.
// The input is not reordered.
func Median(values []float64) float64 {
	med, err := stats.Median(values)
	if err != nil {
		return 0
	}
	return med
}

// Variance calculates the sample variance of a slice of float64 values
func Variance(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	v, err := stats.SampleVariance(values)
	if err != nil {
		return 0
	}
	return v
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	sd, err := stats.StandardDeviationSample(values)
	if err != nil {
		return 0
	}
	return sd
}

// Percentile finds the nearest-rank value at percent p (0 < p <= 100).
func Percentile(values []float64, p float64) (float64, error) {
	return stats.PercentileNearestRank(values, p)
}

// Sum returns the total of a slice of float64 values
func Sum(values []float64) float64 {
	total, err := stats.Sum(values)
	if err != nil {
		return 0
	}
	return total
}

// Constant reports whether every value equals the first one.
func Constant(values []float64) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// Pearson returns the Pearson correlation coefficient of x and y, clamped
// to [-1, 1]. x and y must have equal length and non-zero variance.
// A slice whose largest magnitude lies outside [1e-100, 1e100] is divided
// by that magnitude first so the sums of squares stay finite and non-zero.
func Pearson(x, y []float64) float64 {
	r := stat.Correlation(rescale(x), rescale(y), nil)
	switch {
	case r > 1:
		return 1
	case r < -1:
		return -1
	}
	return r
}

func rescale(values []float64) []float64 {
	m := floats.Norm(values, gomath.Inf(1))
	if m == 0 || (m >= 1e-100 && m <= 1e100) || gomath.IsInf(m, 0) {
		return values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / m
	}
	return out
}

// Description holds the quartiles and bounds of a slice.
type Description struct {
	Count         int
	Mean          float64
	Min, Max      float64
	P25, P50, P75 float64
}

var quartiles = []float64{25, 50, 75}

// Describe summarizes values with nearest-rank quartiles.
func Describe(values []float64) (Description, error) {
	d, err := stats.DescribePercentileFunc(values, false, &quartiles, stats.PercentileNearestRank)
	if err != nil {
		return Description{}, err
	}
	out := Description{
		Count: d.Count,
		Mean:  d.Mean,
		Min:   d.Min,
		Max:   d.Max,
	}
	for _, p := range d.DescriptionPercentiles {
		switch p.Percentile {
		case 25:
			out.P25 = p.Value
		case 50:
			out.P50 = p.Value
		case 75:
			out.P75 = p.Value
		}
	}
	return out, nil
}
