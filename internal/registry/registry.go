package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Borislavv/go-ash-rand/internal/seed"
	"github.com/Borislavv/go-ash-rand/internal/source"
)

// ErrUnknownAlgorithm is returned when an identifier is not registered.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm identifies a registered generator.
type Algorithm string

const (
	Mulberry32  Algorithm = "mulberry32"
	Xorshift128 Algorithm = "xorshift128"
	SFC32       Algorithm = "sfc32"
	JSF32       Algorithm = "jsf32"
	LCG         Algorithm = "lcg"
)

// Default is used when a caller does not name an algorithm.
const Default = Mulberry32

type Quality string

const (
	QualityGood        Quality = "good"
	QualityExcellent   Quality = "excellent"
	QualityOutstanding Quality = "outstanding"
)

type Speed string

const (
	SpeedFast     Speed = "fast"
	SpeedVeryFast Speed = "very-fast"
)

// Descriptor is static metadata for an algorithm. Seed is only filled by Describe
// and has no effect on generation.
type Descriptor struct {
	ID          Algorithm `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	Period      string    `yaml:"period" json:"period"`
	Quality     Quality   `yaml:"quality" json:"quality"`
	Speed       Speed     `yaml:"speed" json:"speed"`
	Description string    `yaml:"description" json:"description"`
	Seed        string    `yaml:"seed,omitempty" json:"seed,omitempty"`
}

type entry struct {
	desc Descriptor
	ctor func(seed.Seed) source.Source
}

// order is the fixed listing order.
var order = [...]Algorithm{Mulberry32, Xorshift128, SFC32, JSF32, LCG}

var entries = map[Algorithm]entry{
	Mulberry32: {
		desc: Descriptor{
			ID:          Mulberry32,
			Name:        "Mulberry32",
			Period:      "2^32-1",
			Quality:     QualityGood,
			Speed:       SpeedVeryFast,
			Description: "Single-word Weyl sequence with a multiply-xorshift output mix",
		},
		ctor: func(s seed.Seed) source.Source { return source.NewMulberry32(s) },
	},
	Xorshift128: {
		desc: Descriptor{
			ID:          Xorshift128,
			Name:        "Xorshift128+",
			Period:      "2^128-1",
			Quality:     QualityExcellent,
			Speed:       SpeedFast,
			Description: "Four-word xorshift with additive output, long period",
		},
		ctor: func(s seed.Seed) source.Source { return source.NewXorshift128(s) },
	},
	SFC32: {
		desc: Descriptor{
			ID:          SFC32,
			Name:        "SFC32",
			Period:      "~2^256",
			Quality:     QualityOutstanding,
			Speed:       SpeedFast,
			Description: "Small fast chaotic generator with counter, passes PractRand",
		},
		ctor: func(s seed.Seed) source.Source { return source.NewSFC32(s) },
	},
	JSF32: {
		desc: Descriptor{
			ID:          JSF32,
			Name:        "JSF32",
			Period:      "~2^127",
			Quality:     QualityExcellent,
			Speed:       SpeedFast,
			Description: "Jenkins small fast generator, good avalanche",
		},
		ctor: func(s seed.Seed) source.Source { return source.NewJSF32(s) },
	},
	LCG: {
		desc: Descriptor{
			ID:          LCG,
			Name:        "LCG (Park-Miller variant)",
			Period:      "2^32-1",
			Quality:     QualityGood,
			Speed:       SpeedVeryFast,
			Description: "Classic linear congruential generator, predictable low bits",
		},
		ctor: func(s seed.Seed) source.Source { return source.NewLCG(s) },
	},
}

// List returns the registered identifiers in their fixed order.
func List() []Algorithm {
	out := make([]Algorithm, len(order))
	copy(out, order[:])
	return out
}

func (a Algorithm) String() string {
	return string(a)
}

// Valid reports whether a is registered.
func (a Algorithm) Valid() bool {
	_, ok := entries[a]
	return ok
}

// Parse validates an identifier arriving as external input.
func Parse(id string) (Algorithm, error) {
	a := Algorithm(id)
	if !a.Valid() {
		return "", unknown(id)
	}
	return a, nil
}

// New instantiates the generator registered under a.
func New(a Algorithm, s seed.Seed) (source.Source, error) {
	e, ok := entries[a]
	if !ok {
		return nil, unknown(string(a))
	}
	return e.ctor(s), nil
}

// Describe returns the static descriptor of a annotated with s.
func Describe(a Algorithm, s seed.Seed) (Descriptor, error) {
	d, err := Lookup(a)
	if err != nil {
		return Descriptor{}, err
	}
	d.Seed = s.String()
	return d, nil
}

// Lookup returns the static descriptor of a.
func Lookup(a Algorithm) (Descriptor, error) {
	e, ok := entries[a]
	if !ok {
		return Descriptor{}, unknown(string(a))
	}
	return e.desc, nil
}

func unknown(id string) error {
	names := make([]string, len(order))
	for i, a := range order {
		names[i] = string(a)
	}
	return fmt.Errorf("%w %q, valid algorithms: %s", ErrUnknownAlgorithm, id, strings.Join(names, ", "))
}
