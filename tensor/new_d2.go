package tensor

import (
	"math/rand"
)

func NewD2Zeros(r, c int) D2 {
	y := make(D2, r)
	for i := range y {
		y[i] = make(D1, c)
	}
	return y
}

func NewD2ZerosLike(x D2) D2 {
    y := make(D2, len(x))
    for i := range y {
        y[i] = make(D1, len(x[i]))
    }
    return y
}

func NewD2RandUniform(r, c int, min, max float64, random *rand.Rand) D2 {
    y := make(D2, r)
    for i := range y {
        y[i] = NewD1RandUniform(c, min, max, random)
    }
    return y
}

// a[i]*b[j] を要素とする外積。
func NewD2Outer(a, b D1) D2 {
	y := make(D2, len(a))
	for i, ai := range a {
		yi := make(D1, len(b))
		for j, bj := range b {
			yi[j] = ai * bj
		}
		y[i] = yi
	}
	return y
}
