package config

// Generator configures one generator handle.
// Every field is optional: an empty config yields mulberry32 with an entropy seed.
type Generator struct {
	// Algorithm names the generator explicitly.
	// Supported values: "mulberry32", "xorshift128", "sfc32", "jsf32", "lcg".
	// When empty, UseCase and then Priority are consulted.
	Algorithm string `yaml:"algorithm"`

	// UseCase picks an algorithm through the advisor.
	// Example: "monte-carlo", "game-shuffle", "testing".
	UseCase string `yaml:"use_case"`

	// Priority picks an algorithm through the advisor when UseCase is empty.
	// Supported values: "speed", "quality", "period", "balanced".
	Priority string `yaml:"priority"`

	// Seed is a text seed. Takes precedence over IntSeed.
	Seed string `yaml:"seed"`

	// IntSeed is a 32-bit integer seed, used when Seed is empty.
	IntSeed *uint32 `yaml:"int_seed"`
}

// HasSeed reports whether the config pins the sequence.
func (cfg *Generator) HasSeed() bool {
	return cfg != nil && (cfg.Seed != "" || cfg.IntSeed != nil)
}
