// Package random isolates the randomness used for shuffling and sampling so
// callers can inject a fixed seed in tests.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source yields uniformly distributed integers in [0, n). Implementations need
// not be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

type Rand struct {
	rng *rand.Rand
}

// New returns a source seeded from crypto/rand.
func New() (*Rand, error) {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewSeeded(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:])), nil
}

// NewSeeded returns a deterministic source; equal seeds produce equal sequences.
func NewSeeded(seed1 uint64, seed2 uint64) *Rand {
	return &Rand{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (source *Rand) IntN(n int) int {
	return source.rng.IntN(n)
}

// Shuffle permutes items in place with Fisher-Yates, so every permutation is
// equally likely given a uniform source.
func Shuffle[T any](source Source, items []T) {
	for index := len(items) - 1; index > 0; index-- {
		swap := source.IntN(index + 1)
		items[index], items[swap] = items[swap], items[index]
	}
}

// Sample draws min(count, len(items)) distinct elements uniformly without
// replacement. items is left untouched.
func Sample[T any](source Source, items []T, count int) []T {
	if count > len(items) {
		count = len(items)
	}
	if count <= 0 {
		return []T{}
	}

	pool := append([]T(nil), items...)
	for index := 0; index < count; index++ {
		swap := index + source.IntN(len(pool)-index)
		pool[index], pool[swap] = pool[swap], pool[index]
	}
	return pool[:count]
}
