package vector

import (
	"gonum.org/v1/gonum/blas/blas32"
	"slices"
	"math/rand"
	crand "github.com/sw965/gradcheck/math/rand"
	omwrand "github.com/sw965/omw/math/rand"
	"github.com/chewxy/math32"
)

func NewZeros(n int) blas32.Vector {
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float32, n),
	}
}

func NewZerosLike(vec blas32.Vector) blas32.Vector {
	return NewZeros(vec.N)
}

func NewRademacher(n int, rng *rand.Rand) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = crand.Rademacher[float32](rng)
	}
	return vec
}

func NewRademacherLike(vec blas32.Vector, rng *rand.Rand) blas32.Vector {
	return NewRademacher(vec.N, rng)
}

func NewRandUniform(n int, min, max float32, rng *rand.Rand) blas32.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = float32(omwrand.Float64Uniform(float64(min), float64(max), rng))
	}
	return vec
}

func Clone(vec blas32.Vector) blas32.Vector {
	return blas32.Vector{
		N:vec.N,
		Inc:vec.Inc,
		Data:slices.Clone(vec.Data),
	}
}

func MaxAbsDiff(a, b blas32.Vector) float32 {
	max := float32(0.0)
	for i := range a.Data {
		d := math32.Abs(a.Data[i] - b.Data[i])
		if d > max {
			max = d
		}
	}
	return max
}
