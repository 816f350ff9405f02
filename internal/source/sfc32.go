package source

import "github.com/Borislavv/go-ash-rand/internal/seed"

const (
	sfc32InitA = 0xdeadbeef
	sfc32InitB = 0xcafebabe
	sfc32InitC = 0x1337beef

	sfc32WarmUp = 12
)

// SFC32 is the small fast chaotic generator: three chaotic words plus a counter
// that guarantees a minimum cycle length.
type SFC32 struct {
	a, b, c uint32
	counter uint32
}

// NewSFC32 mixes every seed byte into b (xor) and c (add), then discards 12 outputs.
func NewSFC32(s seed.Seed) *SFC32 {
	g := &SFC32{a: sfc32InitA, b: sfc32InitB, c: sfc32InitC, counter: 1}
	s.Each(func(x byte) {
		g.b ^= uint32(x)
		g.c += uint32(x)
	})
	warmUp(g.Uint32, sfc32WarmUp)
	return g
}

func (g *SFC32) Uint32() uint32 {
	t := g.a + g.b + g.counter
	g.counter++
	g.a = g.b ^ (g.b >> 9)
	g.b = g.c + (g.c << 3)
	g.c = seed.Rotl(g.c, 21) + t
	return t
}

func (g *SFC32) Float64() float64 {
	return toFloat(g.Uint32())
}
