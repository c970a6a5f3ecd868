package mlfuncs2d

import (
	"fmt"

	"github.com/sw965/gradcheck"
	"github.com/sw965/gradcheck/tensor"
)

func NumericalDifferentiation(x tensor.D2, f func(tensor.D2) float64) tensor.D2 {
	h := 0.001
	grad := tensor.NewD2ZerosLike(x)
	for i := range x {
		gradi := grad[i]
		xi := x[i]
		for j := range xi {
			tmp := xi[j]

			xi[j] = tmp + h
			y1 := f(x)

			xi[j] = tmp - h
			y2 := f(x)

			gradi[j] = (y1 - y2) / (2 * h)
			xi[j] = tmp
		}
	}
	return grad
}

// f(W) = aᵀWb。勾配は外積 a*bᵀ と厳密に一致する。
type BilinearForm struct {
	A tensor.D1
	B tensor.D1
}

func (f BilinearForm) Func(w tensor.D2) (float64, error) {
	if len(f.A) != w.Rows() {
		return 0.0, fmt.Errorf("len(a) != w.Rows()")
	}

	sum := 0.0
	for i, ai := range f.A {
		dot, err := tensor.D1Dot(w[i], f.B)
		if err != nil {
			return 0.0, fmt.Errorf("len(b) != w.Cols()")
		}
		sum += ai * dot
	}
	return sum, nil
}

func (f BilinearForm) Grad(w tensor.D2) (tensor.D2, error) {
	if len(f.A) != w.Rows() {
		return nil, fmt.Errorf("len(a) != w.Rows()")
	}
	if len(f.B) != w.Cols() {
		return nil, fmt.Errorf("len(b) != w.Cols()")
	}
	return tensor.NewD2Outer(f.A, f.B), nil
}

func (f BilinearForm) FuncGrad(w tensor.D2) (float64, tensor.D2, error) {
	y, err := f.Func(w)
	if err != nil {
		return 0.0, nil, err
	}
	grad, err := f.Grad(w)
	return y, grad, err
}

// 行列パラメーター版の一次近似チェック。内積はフロベニウス内積。
func FirstOrder(f func(tensor.D2) (float64, tensor.D2, error), w0, delta tensor.D2, eps float64) (gradcheck.Result[float64], error) {
	if eps <= 0 {
		return gradcheck.Result[float64]{}, fmt.Errorf("eps <= 0")
	}

	if len(delta) != len(w0) {
		return gradcheck.Result[float64]{}, fmt.Errorf("deltaとw0の形状が一致しません。")
	}

	y0, grad0, err := f(w0)
	if err != nil {
		return gradcheck.Result[float64]{}, err
	}

	prod, err := tensor.D2FrobeniusInnerProduct(grad0, delta)
	if err != nil {
		return gradcheck.Result[float64]{}, err
	}

	w1 := w0.Clone()
	for i := range w1 {
		if len(delta[i]) != len(w1[i]) {
			return gradcheck.Result[float64]{}, fmt.Errorf("deltaとw0の形状が一致しません。")
		}
		for j := range w1[i] {
			w1[i][j] += eps * delta[i][j]
		}
	}

	y1, _, err := f(w1)
	if err != nil {
		return gradcheck.Result[float64]{}, err
	}

	return gradcheck.Result[float64]{Actual: y1 - y0, Estimated: eps * prod}, nil
}
