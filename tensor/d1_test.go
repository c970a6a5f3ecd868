package tensor_test

import (
	"testing"
	"fmt"
	"github.com/sw965/gradcheck/tensor"
	omwrand "github.com/sw965/omw/math/rand"
)

func TestD1Dot(t *testing.T) {
	a := tensor.D1{1.0, 2.0, 3.0}
	b := tensor.D1{4.0, 5.0, 6.0}

	dot, err := tensor.D1Dot(a, b)
	if err != nil {
		panic(err)
	}

	if dot != 32.0 {
		t.Errorf("テスト失敗")
	}

	_, err = tensor.D1Dot(a, tensor.D1{1.0})
	if err == nil {
		t.Errorf("テスト失敗")
	}
}

func TestD1Sub(t *testing.T) {
	a := tensor.D1{5.0, 3.0}
	b := tensor.D1{2.0, 4.0}

	y, err := tensor.D1Sub(a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println(y)

	if y[0] != 3.0 || y[1] != -1.0 {
		t.Errorf("テスト失敗")
	}

	//元のD1は変更されない。
	if a[0] != 5.0 {
		t.Errorf("テスト失敗")
	}
}

func TestNewD1Rademacher(t *testing.T) {
	rng := omwrand.NewMt19937()
	d1 := tensor.NewD1Rademacher(10, rng)
	fmt.Println(d1)

	for _, e := range d1 {
		if e != 1.0 && e != -1.0 {
			t.Errorf("テスト失敗")
		}
	}
}
