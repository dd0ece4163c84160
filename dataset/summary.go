package dataset

import (
	"fmt"
	"io"

	"github.com/coleaeason/datastats/internal/log"
	"github.com/coleaeason/datastats/internal/math"
)

// Summary is a snapshot of a Dataset's descriptive statistics.
// Percentiles use the nearest-rank method.
type Summary struct {
	Count    int
	Sum      float64
	Mean     float64
	Median   float64
	Min      float64
	Max      float64
	Variance float64
	StdDev   float64
	P25      float64
	P50      float64
	P75      float64
}

// Describe computes a Summary of d. A Dataset not built with New yields
// the zero Summary.
func (d *Dataset[T]) Describe() Summary {
	values := d.floats()
	desc, err := math.Describe(values)
	if err != nil {
		return Summary{}
	}
	return Summary{
		Count:    desc.Count,
		Sum:      math.Sum(values),
		Mean:     desc.Mean,
		Median:   math.Median(values),
		Min:      desc.Min,
		Max:      desc.Max,
		Variance: math.Variance(values),
		StdDev:   math.StdDev(values),
		P25:      desc.P25,
		P50:      desc.P50,
		P75:      desc.P75,
	}
}

// Fprint writes s to w, one labelled line per statistic, with floats at
// two decimal places. Styling follows color.NoColor from fatih/color.
func (s Summary) Fprint(w io.Writer) error {
	if err := log.Print(w, "", "Summary", log.Blue); err != nil {
		return err
	}
	if err := log.PrintValue(w, "count", s.Count, log.Blue); err != nil {
		return err
	}
	lines := []struct {
		label string
		value float64
		color func(...interface{}) string
	}{
		{"sum", s.Sum, log.Green},
		{"mean", s.Mean, log.Green},
		{"median", s.Median, log.Green},
		{"stddev", s.StdDev, log.Magenta},
		{"variance", s.Variance, log.Magenta},
		{"p25", s.P25, log.Yellow},
		{"p50", s.P50, log.Yellow},
		{"p75", s.P75, log.Yellow},
	}
	for _, l := range lines {
		if err := log.PrintFloat(w, l.label, l.value, 2, l.color); err != nil {
			return err
		}
	}
	return log.PrintPair(w, "range", fmt.Sprintf("[%.2f, %.2f]", s.Min, s.Max), log.Blue)
}
