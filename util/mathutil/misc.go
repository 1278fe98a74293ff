package mathutil

import (
	"golang.org/x/exp/constraints"
)

func Limit[T constraints.Ordered](v, min, max T) T {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

//----------

// Floor division guarded against a zero divisor (returns 0).
func DivFloor(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
