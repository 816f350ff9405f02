package source

import "github.com/Borislavv/go-ash-rand/internal/seed"

const (
	jsf32InitA  = 0xF1EA5EED
	jsf32WarmUp = 20
)

// JSF32 is Bob Jenkins' small fast generator over four words.
type JSF32 struct {
	a, b, c, d uint32
}

// NewJSF32 starts from the fixed constant in a, xors every seed byte into b,
// then discards 20 outputs.
func NewJSF32(s seed.Seed) *JSF32 {
	g := &JSF32{a: jsf32InitA}
	s.Each(func(x byte) {
		g.b ^= uint32(x)
	})
	warmUp(g.Uint32, jsf32WarmUp)
	return g
}

func (g *JSF32) Uint32() uint32 {
	e := g.a - seed.Rotl(g.b, 27)
	g.a = g.b ^ seed.Rotl(g.c, 17)
	g.b = g.c + g.d
	g.c = g.d + e
	g.d = e + g.a
	return g.d
}

func (g *JSF32) Float64() float64 {
	return toFloat(g.Uint32())
}
