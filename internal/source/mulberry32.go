package source

import "github.com/Borislavv/go-ash-rand/internal/seed"

const mulberry32Increment = 0x6D2B79F5

// Mulberry32 keeps a single word advanced by a Weyl increment and mixed on output.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 seeds the state with the folded seed bytes.
func NewMulberry32(s seed.Seed) *Mulberry32 {
	return &Mulberry32{state: s.Folded()}
}

func (m *Mulberry32) Uint32() uint32 {
	m.state += mulberry32Increment
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

func (m *Mulberry32) Float64() float64 {
	return toFloat(m.Uint32())
}
