package tensor

import (
    "fmt"
    "golang.org/x/exp/slices"
    omwmath "github.com/sw965/omw/math"
)

type D2 []D1

func (d2 D2) Rows() int {
    return len(d2)
}

func (d2 D2) Cols() int {
    if len(d2) == 0 {
        return 0
    }
    return len(d2[0])
}

func (d2 D2) Clone() D2 {
    y := make(D2, len(d2))
    for i := range y {
        y[i] = slices.Clone(d2[i])
    }
    return y
}

func (d2 D2) Flatten() D1 {
    y := make(D1, 0, d2.Rows()*d2.Cols())
    for i := range d2 {
        y = append(y, d2[i]...)
    }
    return y
}

func (d2 D2) Abs() D2 {
    y := make(D2, len(d2))
    for i := range d2 {
        y[i] = d2[i].Abs()
    }
    return y
}

func (d2 D2) Max() float64 {
    maxs := make(D1, len(d2))
    for i := range d2 {
        maxs[i] = d2[i].Max()
    }
    return omwmath.Max(maxs...)
}

func D2Sub(a, b D2) (D2, error) {
    if len(a) != len(b) {
        return nil, fmt.Errorf("tensor.D2 の行数が一致しないため、減算できません。")
    }

    y := make(D2, len(a))
    for i := range a {
        yi, err := D1Sub(a[i], b[i])
        if err != nil {
            return nil, err
        }
        y[i] = yi
    }
    return y, nil
}

// 全要素の積和。行列パラメーターに対する一次近似で使う。
func D2FrobeniusInnerProduct(a, b D2) (float64, error) {
    if len(a) != len(b) {
        return 0.0, fmt.Errorf("tensor.D2 の行数が一致しないため、内積を計算できません。")
    }

    sum := 0.0
    for i := range a {
        dot, err := D1Dot(a[i], b[i])
        if err != nil {
            return 0.0, err
        }
        sum += dot
    }
    return sum, nil
}
