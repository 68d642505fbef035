package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Rand is the random source threaded through every generation call.
// *rand.Rand from math/rand/v2 satisfies it. Sources are owned by the caller
// and are not safe for concurrent use; give each session its own.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed source that replays the same draws for the
// same seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
