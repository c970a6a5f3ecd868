package rand

import (
	"math/rand"

	omwrand "github.com/sw965/omw/math/rand"
	"golang.org/x/exp/constraints"
)

func Rademacher[X constraints.Float](rng *rand.Rand) X {
	if omwrand.Bool(rng) {
		return 1.0
	}
	return -1.0
}
