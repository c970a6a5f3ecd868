package tensor2d

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"slices"
	"math/rand"
	omwrand "github.com/sw965/omw/math/rand"
	"github.com/sw965/gradcheck/blas32/vector"
)

func NewZeros(rows, cols int) blas32.General {
	return blas32.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float32, rows*cols),
	}
}

func NewZerosLike(gen blas32.General) blas32.General {
	return NewZeros(gen.Rows, gen.Cols)
}

func NewRandUniform(rows, cols int, min, max float32, rng *rand.Rand) blas32.General {
	gen := NewZeros(rows, cols)
	for i := range gen.Data {
		gen.Data[i] = float32(omwrand.Float64Uniform(float64(min), float64(max), rng))
	}
	return gen
}

// a[i]*b[j] を要素とする外積。Gerで計算する。
func NewOuter(a, b blas32.Vector) blas32.General {
	gen := NewZeros(a.N, b.N)
	blas32.Ger(1.0, a, b, gen)
	return gen
}

func N(gen blas32.General) int {
	return gen.Rows * gen.Cols
}

func Clone(gen blas32.General) blas32.General {
	return blas32.General{
		Rows:   gen.Rows,
		Cols:   gen.Cols,
		Stride: gen.Stride,
		Data:   slices.Clone(gen.Data),
	}
}

func ToVector(gen blas32.General) blas32.Vector {
	return blas32.Vector{
		N:    N(gen),
		Inc:  1,
		Data: gen.Data,
	}
}

func Axpy(alpha float32, x, y blas32.General) {
	xv := ToVector(x)
	yv := ToVector(y)
	blas32.Axpy(alpha, xv, yv)
}

// フロベニウス内積。平坦化した内積と同じ。
func FrobeniusInnerProduct(a, b blas32.General) float32 {
	return blas32.Dot(ToVector(a), ToVector(b))
}

// f(W) = aᵀWb。順伝播はGemvとDot、勾配はGerによる外積。
type BilinearForm struct {
	A blas32.Vector
	B blas32.Vector
}

func (f BilinearForm) Func(w blas32.General) float32 {
	wb := vector.NewZeros(w.Rows)
	blas32.Gemv(blas.NoTrans, 1.0, w, f.B, 0.0, wb)
	return blas32.Dot(f.A, wb)
}

func (f BilinearForm) Grad(_ blas32.General) blas32.General {
	return NewOuter(f.A, f.B)
}
