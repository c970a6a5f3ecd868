package tensor

import (
    "fmt"
    "math"
    "golang.org/x/exp/slices"
    omwmath "github.com/sw965/omw/math"
    "github.com/sw965/omw/fn"
)

type D1 []float64

func (d1 D1) Add(other D1) error {
    if len(d1) != len(other) {
        return fmt.Errorf("tensor.D1の長さが一致しないため、加算できません。")
    }

    for i := range d1 {
        d1[i] += other[i]
    }
    return nil
}

func (d1 D1) Sub(other D1) error {
    if len(d1) != len(other) {
        return fmt.Errorf("tensor.D1 の長さが一致しないため、減算できません。")
    }

    for i := range d1 {
        d1[i] -= other[i]
    }
    return nil
}

func (d1 D1) MulScalar(s float64) {
    for i := range d1 {
        d1[i] *= s
    }
}

func (d1 D1) Clone() D1 {
    return slices.Clone(d1)
}

func (d1 D1) Max() float64 {
    return omwmath.Max(d1...)
}

func (d1 D1) MapFunc(f func(float64)float64) D1 {
    return fn.Map[D1](d1, f)
}

func (d1 D1) Abs() D1 {
    return d1.MapFunc(math.Abs)
}

func D1Add(a, b D1) (D1, error) {
    y := slices.Clone(a)
    err := y.Add(b)
    return y, err
}

func D1Sub(a, b D1) (D1, error) {
    y := slices.Clone(a)
    err := y.Sub(b)
    return y, err
}

func D1Dot(a, b D1) (float64, error) {
    if len(a) != len(b) {
        return 0.0, fmt.Errorf("tensor.D1 の長さが一致しないため、内積を計算できません。")
    }

    sum := 0.0
    for i := range a {
        sum += a[i] * b[i]
    }
    return sum, nil
}
