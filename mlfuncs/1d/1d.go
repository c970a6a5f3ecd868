package mlfuncs1d

import (
	"fmt"
	"math"

	"github.com/sw965/gradcheck/tensor"
	"gonum.org/v1/gonum/floats"
)

func SumSquaredError(y, t tensor.D1) (float64, error) {
	if len(y) != len(t) {
		return 0.0, fmt.Errorf("len(y) != len(t) であるため、SumSquaredErrorを計算できません。")
	}

	sqSum := 0.0
	for i := range y {
		diff := y[i] - t[i]
		sqSum += (diff * diff)
	}
	return sqSum, nil
}

func MeanSquaredError(y, t tensor.D1) (float64, error) {
	sqSum, err := SumSquaredError(y, t)
	n := len(y)
	return sqSum / float64(n), err
}

func NumericalDifferentiation(x tensor.D1, f func(tensor.D1) float64) tensor.D1 {
	h := 0.001
	grad := make(tensor.D1, len(x))
	for i := range x {
		tmp := x[i]

		x[i] = tmp + h
		y1 := f(x)

		x[i] = tmp - h
		y2 := f(x)

		grad[i] = (y1 - y2) / (2 * h)
		x[i] = tmp
	}
	return grad
}

// f(w) = w[0]^2 + 2*w[0]*w[1]^3
type CubicPolynomial struct{}

func (CubicPolynomial) Func(w tensor.D1) (float64, error) {
	if len(w) != 2 {
		return 0.0, fmt.Errorf("len(w) != 2")
	}
	return w[0]*w[0] + 2.0*w[0]*w[1]*w[1]*w[1], nil
}

func (CubicPolynomial) Grad(w tensor.D1) (tensor.D1, error) {
	if len(w) != 2 {
		return nil, fmt.Errorf("len(w) != 2")
	}
	return tensor.D1{
		2.0*w[0] + 2.0*w[1]*w[1]*w[1],
		6.0 * w[0] * w[1] * w[1],
	}, nil
}

func (f CubicPolynomial) FuncGrad(w tensor.D1) (float64, tensor.D1, error) {
	y, err := f.Func(w)
	if err != nil {
		return 0.0, nil, err
	}
	grad, err := f.Grad(w)
	return y, grad, err
}

// ŷ = a*exp(b*x) の残差二乗和。w = [a, b]
type ExpModelSumSquares struct {
	X tensor.D1
	Y tensor.D1
}

func (m ExpModelSumSquares) Predict(w tensor.D1) (tensor.D1, error) {
	if len(w) != 2 {
		return nil, fmt.Errorf("len(w) != 2")
	}
	a, b := w[0], w[1]
	y := make(tensor.D1, len(m.X))
	for i, xi := range m.X {
		y[i] = a * math.Exp(b*xi)
	}
	return y, nil
}

func (m ExpModelSumSquares) Func(w tensor.D1) (float64, error) {
	if len(m.X) != len(m.Y) {
		return 0.0, fmt.Errorf("len(X) != len(Y)")
	}
	yHat, err := m.Predict(w)
	if err != nil {
		return 0.0, err
	}
	return SumSquaredError(yHat, m.Y)
}

func (m ExpModelSumSquares) Grad(w tensor.D1) (tensor.D1, error) {
	if len(m.X) != len(m.Y) {
		return nil, fmt.Errorf("len(X) != len(Y)")
	}
	if len(w) != 2 {
		return nil, fmt.Errorf("len(w) != 2")
	}

	a, b := w[0], w[1]
	gradA := 0.0
	gradB := 0.0
	for i, xi := range m.X {
		e := math.Exp(b * xi)
		r := a*e - m.Y[i]
		gradA += 2.0 * r * e
		gradB += 2.0 * r * a * xi * e
	}
	return tensor.D1{gradA, gradB}, nil
}

func (m ExpModelSumSquares) FuncGrad(w tensor.D1) (float64, tensor.D1, error) {
	y, err := m.Func(w)
	if err != nil {
		return 0.0, nil, err
	}
	grad, err := m.Grad(w)
	return y, grad, err
}

// ŷ_i = log(w[0] + Σ_j w[1+j]*X[i][j]) の平均二乗誤差。
// z_i <= 0 のサンプルがあると定義されないので、エラーを返す。
type LogLinearMSE struct {
	X tensor.D2
	Y tensor.D1
}

func (m LogLinearMSE) linear(w tensor.D1, i int) (float64, error) {
	xi := m.X[i]
	if len(w) != len(xi)+1 {
		return 0.0, fmt.Errorf("len(w) != 1+len(X[i])")
	}

	z := w[0] + floats.Dot(w[1:], xi)
	if z <= 0 {
		return 0.0, fmt.Errorf("z[%d] = %g が正ではないため、対数を取れません。", i, z)
	}
	return z, nil
}

func (m LogLinearMSE) Func(w tensor.D1) (float64, error) {
	if len(m.X) != len(m.Y) {
		return 0.0, fmt.Errorf("len(X) != len(Y)")
	}

	yHat := make(tensor.D1, len(m.X))
	for i := range m.X {
		z, err := m.linear(w, i)
		if err != nil {
			return 0.0, err
		}
		yHat[i] = math.Log(z)
	}
	return MeanSquaredError(yHat, m.Y)
}

func (m LogLinearMSE) Grad(w tensor.D1) (tensor.D1, error) {
	if len(m.X) != len(m.Y) {
		return nil, fmt.Errorf("len(X) != len(Y)")
	}

	n := float64(len(m.X))
	grad := tensor.NewD1ZerosLike(w)
	for i := range m.X {
		z, err := m.linear(w, i)
		if err != nil {
			return nil, err
		}

		c := 2.0 * (math.Log(z) - m.Y[i]) / (z * n)
		grad[0] += c
		for j, xij := range m.X[i] {
			grad[1+j] += c * xij
		}
	}
	return grad, nil
}

func (m LogLinearMSE) FuncGrad(w tensor.D1) (float64, tensor.D1, error) {
	y, err := m.Func(w)
	if err != nil {
		return 0.0, nil, err
	}
	grad, err := m.Grad(w)
	return y, grad, err
}
