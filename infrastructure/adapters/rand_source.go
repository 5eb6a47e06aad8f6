package adapters

import (
	"math/rand/v2"

	"github.com/mhindle4/marty-backend/application/ports/outbound"
)

type randSource struct{}

// NewRandSource returns the production randomness used by reply seasoning.
func NewRandSource() outbound.RandSource {
	return randSource{}
}

func (randSource) Float64() float64 {
	return rand.Float64()
}

func (randSource) IntN(n int) int {
	return rand.IntN(n)
}
