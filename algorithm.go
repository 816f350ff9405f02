package ashrand

import (
	"github.com/Borislavv/go-ash-rand/internal/advisor"
	"github.com/Borislavv/go-ash-rand/internal/registry"
	"github.com/Borislavv/go-ash-rand/internal/seed"
)

type (
	Algorithm  = registry.Algorithm
	Descriptor = registry.Descriptor
	Quality    = registry.Quality
	Speed      = registry.Speed
	Seed       = seed.Seed
)

const (
	Mulberry32  = registry.Mulberry32
	Xorshift128 = registry.Xorshift128
	SFC32       = registry.SFC32
	JSF32       = registry.JSF32
	LCG         = registry.LCG
)

var ErrUnknownAlgorithm = registry.ErrUnknownAlgorithm

// TextSeed seeds from the UTF-8 bytes of s.
func TextSeed(s string) Seed { return seed.FromText(s) }

// IntSeed seeds from the 4 little-endian bytes of v.
func IntSeed(v uint32) Seed { return seed.FromUint32(v) }

// DeriveSeed returns a sub-seed of parent for label.
func DeriveSeed(parent Seed, label string) Seed { return seed.Derive(parent, label) }

// Algorithms lists the registered identifiers in fixed order.
func Algorithms() []Algorithm { return registry.List() }

// ParseAlgorithm validates an identifier coming from external input.
func ParseAlgorithm(id string) (Algorithm, error) { return registry.Parse(id) }

// Describe returns the descriptor of alg annotated with s, for logging only.
func Describe(alg Algorithm, s Seed) (Descriptor, error) { return registry.Describe(alg, s) }

// Select picks an algorithm for a priority: speed, quality, period or balanced.
// Unknown priorities yield mulberry32.
func Select(priority string) Algorithm { return advisor.Select(priority) }

// Recommend picks an algorithm for a use case. Unknown use cases yield sfc32.
// "cryptography" maps to xorshift128, which is still not cryptographically secure.
func Recommend(useCase string) Algorithm { return advisor.Recommend(useCase) }

// Compare renders all algorithms as a text table.
func Compare() string { return advisor.Compare() }
