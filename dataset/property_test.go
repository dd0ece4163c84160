package dataset

import (
	"errors"
	"math"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func drawInts(t *rapid.T, label string, minLen int) []int {
	return rapid.SliceOfN(rapid.IntRange(-1_000_000, 1_000_000), minLen, 64).Draw(t, label)
}

func asFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func TestPropertySumIsAdditive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawInts(t, "a", 1)
		b := drawInts(t, "b", 1)
		da, _ := New(a)
		db, _ := New(b)
		dab, err := New(append(slices.Clone(a), b...))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		sa, errA := da.Sum()
		sb, errB := db.Sum()
		got, err := dab.Sum()
		if errA != nil || errB != nil || err != nil {
			t.Fatalf("Sum: %v %v %v", errA, errB, err)
		}
		if want := sa + sb; got != want {
			t.Fatalf("Sum(a++b) = %d, want %d", got, want)
		}
	})
}

func TestPropertyMedianWithinRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d, _ := New(drawInts(t, "data", 1))
		m := d.Median()
		if m < float64(d.Min()) || m > float64(d.Max()) {
			t.Fatalf("median %v outside [%d, %d]", m, d.Min(), d.Max())
		}
	})
}

func TestPropertyFilterGreaterThan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := drawInts(t, "data", 1)
		threshold := rapid.IntRange(-1_000_000, 1_000_000).Draw(t, "threshold")
		d, _ := New(data)
		got := d.FilterGreaterThan(float64(threshold))

		var want []int
		for _, v := range data {
			if v > threshold {
				want = append(want, v)
			}
		}
		if !slices.Equal(got, want) {
			t.Fatalf("FilterGreaterThan(%d) = %v, want %v", threshold, got, want)
		}
	})
}

func TestPropertySumMatchesWideTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Int8(), 1, 16).Draw(t, "data")
		var want int
		for _, v := range data {
			want += int(v)
		}
		d, _ := New(data)
		got, err := d.Sum()
		if want < math.MinInt8 || want > math.MaxInt8 {
			if !errors.Is(err, ErrSumOverflow) {
				t.Fatalf("Sum = %d, %v; want overflow for total %d", got, err, want)
			}
			return
		}
		if err != nil || int(got) != want {
			t.Fatalf("Sum = %d, %v; want %d", got, err, want)
		}
	})
}

func TestPropertyNormalizeBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := drawInts(t, "data", 1)
		d, _ := New(data)
		got, err := d.Normalize()
		if d.Min() == d.Max() {
			if !errors.Is(err, ErrZeroRange) {
				t.Fatalf("Normalize on constant data: err = %v, want %v", err, ErrZeroRange)
			}
			return
		}
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		lo, hi := slices.Index(data, d.Min()), slices.Index(data, d.Max())
		if got[lo] != 0 || got[hi] != 1 {
			t.Fatalf("min maps to %v and max to %v", got[lo], got[hi])
		}
		for i, v := range got {
			if v < 0 || v > 1 {
				t.Fatalf("value %d normalized to %v", data[i], v)
			}
		}
	})
}

func TestPropertyCorrelationSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 32).Draw(t, "n")
		x := asFloats(rapid.SliceOfN(rapid.IntRange(-1000, 1000), n, n).Draw(t, "x"))
		y := asFloats(rapid.SliceOfN(rapid.IntRange(-1000, 1000), n, n).Draw(t, "y"))

		xy, err := Correlation(x, y)
		if err != nil {
			if !errors.Is(err, ErrZeroVariance) {
				t.Fatalf("Correlation: %v", err)
			}
			return
		}
		yx, err := Correlation(y, x)
		if err != nil {
			t.Fatalf("Correlation(y, x): %v", err)
		}
		if xy != yx {
			t.Fatalf("Correlation(x, y) = %v, Correlation(y, x) = %v", xy, yx)
		}
		if math.IsNaN(xy) || xy < -1 || xy > 1 {
			t.Fatalf("Correlation out of range: %v", xy)
		}
	})
}
