package tensor2d_test

import (
	"testing"
	"fmt"
	"slices"
	"gonum.org/v1/gonum/blas/blas32"
	"github.com/sw965/gradcheck/blas32/tensor/2d"
	"github.com/sw965/gradcheck/blas32/vector"
	omwrand "github.com/sw965/omw/math/rand"
)

func TestNewOuter(t *testing.T) {
	a := blas32.Vector{
		N:2,
		Inc:1,
		Data:[]float32{1, 2},
	}
	b := blas32.Vector{
		N:3,
		Inc:1,
		Data:[]float32{3, 4, 5},
	}

	result := tensor2d.NewOuter(a, b)
	expected := blas32.General{
		Rows:2,
		Cols:3,
		Stride:3,
		Data:[]float32{
			3, 4, 5,
			6, 8, 10,
		},
	}

	if result.Rows != expected.Rows {
		t.Errorf("テスト失敗")
	}

	if result.Cols != expected.Cols {
		t.Errorf("テスト失敗")
	}

	if !slices.Equal(result.Data, expected.Data) {
		t.Errorf("テスト失敗")
	}
}

func TestFrobeniusInnerProduct(t *testing.T) {
	a := blas32.General{
		Rows:2,
		Cols:2,
		Stride:2,
		Data:[]float32{1, 2, 3, 4},
	}
	b := blas32.General{
		Rows:2,
		Cols:2,
		Stride:2,
		Data:[]float32{5, 6, 7, 8},
	}

	result := tensor2d.FrobeniusInnerProduct(a, b)
	if result != 70.0 {
		t.Errorf("テスト失敗")
	}
}

func TestBilinearForm(t *testing.T) {
	f := tensor2d.BilinearForm{
		A: blas32.Vector{N:2, Inc:1, Data:[]float32{1, 2}},
		B: blas32.Vector{N:2, Inc:1, Data:[]float32{3, 4}},
	}

	w := blas32.General{
		Rows:2,
		Cols:2,
		Stride:2,
		Data:[]float32{
			1, 0,
			0, 1,
		},
	}

	//aᵀWb = 1*3 + 2*4 = 11
	y := f.Func(w)
	if y != 11.0 {
		t.Errorf("テスト失敗")
	}

	grad := f.Grad(w)
	expected := []float32{
		3, 4,
		6, 8,
	}
	if !slices.Equal(grad.Data, expected) {
		t.Errorf("テスト失敗")
	}
}

// 一次近似チェックの float32 版。aᵀWbは線形なので厳密に一致する。
func TestBilinearFormFirstOrder(t *testing.T) {
	rng := omwrand.NewMt19937()
	rows, cols := 3, 4

	f := tensor2d.BilinearForm{
		A: vector.NewRandUniform(rows, -2.0, 2.0, rng),
		B: vector.NewRandUniform(cols, -2.0, 2.0, rng),
	}
	w0 := tensor2d.NewRandUniform(rows, cols, -2.0, 2.0, rng)
	delta := tensor2d.NewRandUniform(rows, cols, -1.0, 1.0, rng)

	y0 := f.Func(w0)
	grad0 := f.Grad(w0)

	eps := float32(0.001)
	w1 := tensor2d.Clone(w0)
	tensor2d.Axpy(eps, delta, w1)

	actual := f.Func(w1) - y0
	estimated := eps * tensor2d.FrobeniusInnerProduct(grad0, delta)
	fmt.Println("actual =", actual, "estimated =", estimated)

	diff := actual - estimated
	if diff < 0 {
		diff = -diff
	}

	if diff > 1e-3 {
		t.Errorf("テスト失敗")
	}
}
