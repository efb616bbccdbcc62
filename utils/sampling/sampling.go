// Package sampling implements deterministic sampling of integers and floats
// from a stream of random bytes.
package sampling

import (
	"encoding/binary"
)

// Sampler draws uniform values from a PRNG.
type Sampler struct {
	prng PRNG
	buf  [8]byte
}

// NewSampler creates a new Sampler reading from prng.
func NewSampler(prng PRNG) *Sampler {
	return &Sampler{prng: prng}
}

// Uint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func (s *Sampler) Uint64() uint64 {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Float64 returns a random float between min and max.
func (s *Sampler) Float64(min, max float64) float64 {
	f := float64(s.Uint64()) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// Int64 returns a random integer in [min, max].
func (s *Sampler) Int64(min, max int64) int64 {
	if min > max {
		panic("cannot Int64: min > max")
	}
	span := uint64(max) - uint64(min) + 1
	if span == 0 { // full int64 range
		return int64(s.Uint64())
	}
	return min + int64(s.Uint64()%span)
}

// Int64Slice returns n random integers in [min, max].
func (s *Sampler) Int64Slice(n int, min, max int64) (v []int64) {
	v = make([]int64, n)
	for i := range v {
		v[i] = s.Int64(min, max)
	}
	return
}

// Float64Slice returns n random floats between min and max.
func (s *Sampler) Float64Slice(n int, min, max float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = s.Float64(min, max)
	}
	return
}
