package scalar

import (
	cmath "github.com/sw965/gradcheck/math"
)

func NumericalDifferentiation(x float64, f func(float64) float64) float64 {
	h := 0.001
	y1 := f(x + h)
	y2 := f(x - h)
	return cmath.CentralDifference(y1, y2, h)
}
