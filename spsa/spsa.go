package spsa

import (
	"math/rand"

	"github.com/sw965/gradcheck/blas32/vector"
	cmath "github.com/sw965/gradcheck/math"
	"gonum.org/v1/gonum/blas/blas32"
)

type LossFunc func(w blas32.Vector, workerIdx int) (float32, error)

/*
	同時摂動による勾配の推定。
	1試行の推定値はノイズが大きいので、rngsの数だけ並列に試行して平均する。
	推定値の期待値は勾配にO(c²)で一致する。
*/
func EstimateGrad(lossFunc LossFunc, w blas32.Vector, c float32, rngs []*rand.Rand) (blas32.Vector, error) {
	p := len(rngs)
	gradByParallel := make([]blas32.Vector, p)
	errCh := make(chan error, p)

	worker := func(workerIdx int) {
		rng := rngs[workerIdx]
		delta := vector.NewRademacherLike(w, rng)

		plusW := vector.Clone(w)
		blas32.Axpy(c, delta, plusW)

		minusW := vector.Clone(w)
		blas32.Axpy(-c, delta, minusW)

		plusLoss, err := lossFunc(plusW, workerIdx)
		if err != nil {
			errCh <- err
			return
		}

		minusLoss, err := lossFunc(minusW, workerIdx)
		if err != nil {
			errCh <- err
			return
		}

		grad := vector.NewZerosLike(w)
		for i, d := range delta.Data {
			grad.Data[i] = cmath.CentralDifference(plusLoss, minusLoss, c*d)
		}

		gradByParallel[workerIdx] = grad
		errCh <- nil
	}

	for i := 0; i < p; i++ {
		go worker(i)
	}

	for i := 0; i < p; i++ {
		if err := <-errCh; err != nil {
			return blas32.Vector{}, err
		}
	}

	firstGrad := gradByParallel[0]
	blas32.Scal(1.0/float32(p), firstGrad)
	for _, grad := range gradByParallel[1:] {
		blas32.Axpy(1.0/float32(p), grad, firstGrad)
	}
	return firstGrad, nil
}

func NumericalGrad(lossFunc LossFunc, w blas32.Vector) (blas32.Vector, error) {
	const h float32 = 1e-4
	grad := vector.NewZerosLike(w)

	for i := range w.Data {
		tmp := w.Data[i]

		//プラス方向への微小変化
		w.Data[i] = tmp + h
		plusLoss, err := lossFunc(w, 0)
		if err != nil {
			return blas32.Vector{}, err
		}

		//マイナス方向への微小変化
		w.Data[i] = tmp - h
		minusLoss, err := lossFunc(w, 0)
		if err != nil {
			return blas32.Vector{}, err
		}

		grad.Data[i] = cmath.CentralDifference(plusLoss, minusLoss, h)
		//微小変化前に戻す
		w.Data[i] = tmp
	}
	return grad, nil
}
