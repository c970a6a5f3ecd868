package tensor

import (
	"math/rand"
	omwrand "github.com/sw965/omw/math/rand"
	crand "github.com/sw965/gradcheck/math/rand"
)

func NewD1Zeros(n int) D1 {
    return make(D1, n)
}

func NewD1ZerosLike(d1 D1) D1 {
    return NewD1Zeros(len(d1))
}

func NewD1Ones(n int) D1 {
	ret := make(D1, n)
	for i := range ret {
		ret[i] = 1.0
	}
	return ret
}

func NewD1RandUniform(n int, min, max float64, r *rand.Rand) D1 {
	ret := make(D1, n)
	for i := range ret {
		ret[i] = omwrand.Float64Uniform(min, max, r)
	}
	return ret
}

func NewD1Rademacher(n int, r *rand.Rand) D1 {
	ret := make(D1, n)
	for i := range ret {
		ret[i] = crand.Rademacher[float64](r)
	}
	return ret
}
