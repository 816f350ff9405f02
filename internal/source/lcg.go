package source

import "github.com/Borislavv/go-ash-rand/internal/seed"

// Numerical Recipes constants. The generator has historically been labelled a
// Park-Miller variant; the constants are kept for output compatibility.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// LCG is a linear congruential generator modulo 2^32.
type LCG struct {
	state uint32
}

// NewLCG seeds with the folded seed bytes. Zero is replaced by one.
func NewLCG(s seed.Seed) *LCG {
	st := s.Folded()
	if st == 0 {
		st = 1
	}
	return &LCG{state: st}
}

func (l *LCG) Uint32() uint32 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return l.state
}

func (l *LCG) Float64() float64 {
	return toFloat(l.Uint32())
}
