package dataset

import (
	"fmt"

	"github.com/coleaeason/datastats/internal/math"
)

// Correlation returns the Pearson correlation coefficient of x and y, a
// value in [-1, 1]. x and y must be the same length, hold at least two
// points, and neither may be constant.
func Correlation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("correlation of %d and %d values: %w", len(x), len(y), ErrLengthMismatch)
	}
	if len(x) < 2 {
		return 0, ErrTooFewPoints
	}
	if math.Constant(x) || math.Constant(y) {
		return 0, ErrZeroVariance
	}
	return math.Pearson(x, y), nil
}
