package scalar_test

import (
	"testing"
	"fmt"
	"math"
	"github.com/sw965/gradcheck/mlfuncs/scalar"
)

func TestNumericalDifferentiation(t *testing.T) {
	f := func(x float64) float64 {
		return x * x * x
	}

	//f'(2) = 12
	d := scalar.NumericalDifferentiation(2.0, f)
	fmt.Println("d =", d)

	if math.Abs(d-12.0) > 0.001 {
		t.Errorf("テスト失敗")
	}
}
