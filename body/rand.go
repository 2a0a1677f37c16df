package body

import (
	"math/rand/v2"
	"time"
)

// ResolveSeed replaces 0 with a clock-derived seed so a run can be reproduced from its record
func ResolveSeed(seed uint64) uint64 {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return seed
}

// NewRand returns a PCG generator for seed, 0 seeds from the clock
func NewRand(seed uint64) *rand.Rand {
	seed = ResolveSeed(seed)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
