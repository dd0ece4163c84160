package dataset

import (
	"math"
	"math/bits"
)

func isInteger[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// integerSum adds data in 64 bits and reports false when the total does not
// fit in 64 bits or in T.
func integerSum[T Number](data []T) (T, bool) {
	if isSigned[T]() {
		var acc int64
		for _, v := range data {
			n := int64(v)
			s := acc + n
			if (n > 0 && s < acc) || (n < 0 && s > acc) {
				return 0, false
			}
			acc = s
		}
		return T(acc), int64(T(acc)) == acc
	}
	var acc, carry uint64
	for _, v := range data {
		acc, carry = bits.Add64(acc, uint64(v), 0)
		if carry != 0 {
			return 0, false
		}
	}
	return T(acc), uint64(T(acc)) == acc
}

// distance returns v - lo for lo <= v without overflow. Two's complement
// subtraction in uint64 yields the exact difference for every integer type.
func distance[T Number](v, lo T) float64 {
	return float64(uint64(v) - uint64(lo))
}

const two63 = 1 << 63

// greater reports whether v > t, comparing integers against the floor of t
// so large values are not rounded through float64.
func greater[T Number](v T, t float64) bool {
	if !isInteger[T]() {
		return float64(v) > t
	}
	if math.IsNaN(t) {
		return false
	}
	f := math.Floor(t)
	if isSigned[T]() {
		switch {
		case f < -two63:
			return true
		case f >= two63:
			return false
		}
		return int64(v) > int64(f)
	}
	switch {
	case f < 0:
		return true
	case f >= 2*two63:
		return false
	}
	return uint64(v) > uint64(f)
}
