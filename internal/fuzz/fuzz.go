//go:build fuzz

// Package fuzz implements the optional input-mutation build feature: before
// preprocessing, a small fixed number of random byte positions in the raw
// source are overwritten with random byte values, using a seeded xorshift32
// PRNG so a run is reproducible from its seed.
package fuzz

// DefaultSeed is the xorshift32 seed used when none is supplied.
const DefaultSeed uint32 = 2

// mutationCount is the small fixed number of byte positions each Mutator
// flips per call.
const mutationCount = 8

// Mutator implements compile.InputMutator using a seeded xorshift32 stream.
type Mutator struct {
	state uint32
}

// New constructs a Mutator seeded with seed. A zero seed is replaced with
// DefaultSeed: xorshift32 has a fixed point at zero and never advances.
func New(seed uint32) *Mutator {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Mutator{state: seed}
}

// next advances the xorshift32 state and returns it.
func (m *Mutator) next() uint32 {
	x := m.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	m.state = x
	return x
}

// Mutate returns a copy of src with mutationCount random byte positions
// (or fewer, for very short sources) overwritten with random byte values.
func (m *Mutator) Mutate(src []byte) []byte {
	if len(src) == 0 {
		return src
	}
	out := make([]byte, len(src))
	copy(out, src)

	n := mutationCount
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		pos := int(m.next()) % len(out)
		val := byte(m.next() % 256)
		out[pos] = val
	}
	return out
}
