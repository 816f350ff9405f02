package source

import "github.com/Borislavv/go-ash-rand/internal/seed"

// Odd multipliers spreading the seed hash across the four state words.
const (
	xorshiftMul0 = 0x85EBCA6B
	xorshiftMul1 = 0xC2B2AE35
	xorshiftMul2 = 0x27D4EB2F
	xorshiftMul3 = 0x165667B1
)

// Xorshift128 is the 128-bit xorshift-plus family over four 32-bit words.
type Xorshift128 struct {
	s [4]uint32
}

// NewXorshift128 hashes the seed bytes and distributes the hash into the state.
// Word 0 is forced odd so the state can never be all zero.
func NewXorshift128(s seed.Seed) *Xorshift128 {
	var h uint32
	s.Each(func(x byte) {
		h = uint32(x) + (h << 6) + (h << 16) - h
	})

	x := &Xorshift128{s: [4]uint32{
		h * xorshiftMul0,
		h * xorshiftMul1,
		h * xorshiftMul2,
		h * xorshiftMul3,
	}}
	x.s[0] |= 1
	return x
}

func (x *Xorshift128) Uint32() uint32 {
	s := &x.s
	result := s[0] + s[3]
	t := s[1] << 9

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = seed.Rotl(s[3], 11)

	return result
}

func (x *Xorshift128) Float64() float64 {
	return toFloat(x.Uint32())
}
