// Package ashrand provides seeded, reproducible pseudorandom generators with a
// small set of derived distributions.
//
// The generators are fast and deterministic. They are NOT suitable for
// cryptography or any adversarial context: outputs are predictable from a few
// observed draws.
//
// A Generator is single-owner mutable state with no internal locking. Give each
// goroutine its own Generator (see Fork) or serialize access externally.
package ashrand

import (
	"log/slog"
	"math"

	"github.com/Borislavv/go-ash-rand/config"
	"github.com/Borislavv/go-ash-rand/internal/advisor"
	"github.com/Borislavv/go-ash-rand/internal/entropy"
	"github.com/Borislavv/go-ash-rand/internal/registry"
	"github.com/Borislavv/go-ash-rand/internal/seed"
	"github.com/Borislavv/go-ash-rand/internal/source"
)

// Generator wraps one generator state machine with derived distributions.
// Build it with New, NewDefault or NewFromConfig; the zero value is unusable.
type Generator struct {
	src   source.Source
	alg   Algorithm
	seed  Seed
	draws uint64
}

// New creates a generator of alg seeded with s.
// It fails with ErrUnknownAlgorithm when alg is not registered.
func New(alg Algorithm, s Seed) (*Generator, error) {
	src, err := registry.New(alg, s)
	if err != nil {
		return nil, err
	}
	return &Generator{src: src, alg: alg, seed: s}, nil
}

// NewDefault creates a mulberry32 generator.
func NewDefault(s Seed) *Generator {
	return &Generator{src: source.NewMulberry32(s), alg: registry.Default, seed: s}
}

// NewFromConfig resolves the algorithm and seed from cfg and logs the result.
// A nil cfg behaves as an empty one; a nil logger uses slog.Default.
func NewFromConfig(cfg *config.Generator, logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = &config.Generator{}
	}

	alg, err := resolveAlgorithm(cfg)
	if err != nil {
		return nil, err
	}

	var s Seed
	switch {
	case cfg.Seed != "":
		s = TextSeed(cfg.Seed)
	case cfg.IntSeed != nil:
		s = IntSeed(*cfg.IntSeed)
	default:
		s = IntSeed(entropy.Uint32())
		logger.Warn("no seed configured, sequence is not reproducible", "seed", s.String())
	}

	g, err := New(alg, s)
	if err != nil {
		return nil, err
	}

	d := g.Describe()
	logger.Info("generator created",
		"algorithm", string(d.ID),
		"name", d.Name,
		"period", d.Period,
		"quality", string(d.Quality),
		"speed", string(d.Speed),
		"seed", d.Seed,
	)
	return g, nil
}

func resolveAlgorithm(cfg *config.Generator) (Algorithm, error) {
	switch {
	case cfg.Algorithm != "":
		return registry.Parse(cfg.Algorithm)
	case cfg.UseCase != "":
		return advisor.Recommend(cfg.UseCase), nil
	case cfg.Priority != "":
		return advisor.Select(cfg.Priority), nil
	default:
		return registry.Default, nil
	}
}

// Algorithm returns the identifier this generator was created with.
func (g *Generator) Algorithm() Algorithm {
	return g.alg
}

// Seed returns the seed this generator was created with.
func (g *Generator) Seed() Seed {
	return g.seed
}

// Describe returns the algorithm descriptor annotated with the seed.
func (g *Generator) Describe() Descriptor {
	d, _ := registry.Describe(g.alg, g.seed)
	return d
}

// Draws returns how many raw draws have been consumed.
func (g *Generator) Draws() uint64 {
	return g.draws
}

// Fork returns an independent generator of the same algorithm whose seed is
// derived from this generator's seed and label. The parent is not advanced.
func (g *Generator) Fork(label string) *Generator {
	s := seed.Derive(g.seed, label)
	src, _ := registry.New(g.alg, s)
	return &Generator{src: src, alg: g.alg, seed: s}
}

// Float64 returns the next raw draw in [0,1).
func (g *Generator) Float64() float64 {
	g.draws++
	return g.src.Float64()
}

// IntRange returns an integer in [min, max] as floor(draw*(max-min+1))+min.
// The mapping is not perfectly uniform when the span does not divide 2^32, and
// a draw carries only 32 bits, so spans wider than 2^32 reach a sparse subset of
// the range. Spans wider than 2^53 are additionally rounded to a float64 before
// scaling; the result always stays within [min, max].
// It panics if min > max.
func (g *Generator) IntRange(min, max int) int {
	if min > max {
		panic("ashrand: IntRange called with min > max")
	}
	// computed in uint64 so min and max far apart cannot overflow; 0 means the full range
	span := uint64(max) - uint64(min) + 1
	scale := float64(span)
	if span == 0 {
		scale = 1 << 64
	}
	off := uint64(math.Floor(g.Float64() * scale))
	if span != 0 && off >= span {
		off = span - 1
	}
	return min + int(off)
}

// FloatRange returns draw*(max-min)+min, in [min, max).
func (g *Generator) FloatRange(min, max float64) float64 {
	return g.Float64()*(max-min) + min
}

// Gauss returns a normally distributed value rounded to the nearest integer,
// halves rounding up. It consumes two draws and uses only the cosine branch of
// the Box-Muller transform. A first draw of exactly 0 yields ±Inf or NaN.
func (g *Generator) Gauss(mean, stdDev float64) float64 {
	u1 := g.Float64()
	u2 := g.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return math.Floor(z*stdDev + mean + 0.5)
}

// Batch returns n consecutive draws. It panics if n is negative.
func (g *Generator) Batch(n int) []float64 {
	if n < 0 {
		panic("ashrand: Batch called with negative count")
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Float64()
	}
	return out
}

// Item returns a random element of items using one IntRange draw.
// It panics if items is empty.
func Item[T any](g *Generator, items []T) T {
	if len(items) == 0 {
		panic("ashrand: Item called with empty slice")
	}
	return items[g.IntRange(0, len(items)-1)]
}

// Shuffle returns a shuffled copy of items (backwards Fisher-Yates).
// items is never mutated. It consumes len(items)-1 draws.
func Shuffle[T any](g *Generator, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := g.IntRange(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
