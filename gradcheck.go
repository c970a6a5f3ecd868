package gradcheck

import (
	"fmt"
	"golang.org/x/exp/constraints"
)

func NumericalGradient[X constraints.Float](xs []X, f func([]X) X) []X {
	h := X(0.0001)
	n := len(xs)
	grad := make([]X, n)
	for i := 0; i < n; i++ {
		tmp := xs[i]
		xs[i] = tmp + h
		y1 := f(xs)

		xs[i] = tmp - h
		y2 := f(xs)

		grad[i] = (y1 - y2) / (h * 2)
		xs[i] = tmp
	}
	return grad
}

type Result[X constraints.Float] struct {
	Actual    X
	Estimated X
}

func (r *Result[X]) Diff() X {
	d := r.Actual - r.Estimated
	if d < 0 {
		return -d
	}
	return d
}

func (r *Result[X]) RelativeDiff(floor X) X {
	denom := r.Actual
	if denom < 0 {
		denom = -denom
	}
	if denom < floor {
		denom = floor
	}
	return r.Diff() / denom
}

/*
	f(w0+ε*δ) - f(w0) と ε*⟨grad(w0), δ⟩ を比較する。
	残差はO(ε²)なので、εが大きすぎると正しい勾配でも一致しない。
*/
func FirstOrder[X constraints.Float](f func([]X) (X, []X, error), w0, delta []X, eps X) (Result[X], error) {
	if len(delta) != len(w0) {
		return Result[X]{}, fmt.Errorf("len(delta) != len(w0)")
	}

	if eps <= 0 {
		return Result[X]{}, fmt.Errorf("eps <= 0")
	}

	y0, grad0, err := f(w0)
	if err != nil {
		return Result[X]{}, err
	}

	if len(grad0) != len(w0) {
		return Result[X]{}, fmt.Errorf("len(grad0) != len(w0)")
	}

	w1 := make([]X, len(w0))
	est := X(0.0)
	for i := range w0 {
		w1[i] = w0[i] + eps*delta[i]
		est += grad0[i] * delta[i]
	}
	est *= eps

	y1, _, err := f(w1)
	if err != nil {
		return Result[X]{}, err
	}

	return Result[X]{Actual: y1 - y0, Estimated: est}, nil
}
