// Package advisor maps priorities and use cases onto registered algorithms.
// All functions are pure and total: unknown tags resolve to a fallback.
package advisor

import (
	"strings"

	"github.com/Borislavv/go-ash-rand/internal/registry"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type Priority string

const (
	PrioritySpeed    Priority = "speed"
	PriorityQuality  Priority = "quality"
	PriorityPeriod   Priority = "period"
	PriorityBalanced Priority = "balanced"
)

type UseCase string

const (
	UseCaseGameShuffle          UseCase = "game-shuffle"
	UseCaseProceduralGeneration UseCase = "procedural-generation"
	UseCaseMonteCarlo           UseCase = "monte-carlo"
	// UseCaseCryptography maps to the highest quality generator available here.
	// None of the generators are cryptographically secure.
	UseCaseCryptography      UseCase = "cryptography"
	UseCaseTesting           UseCase = "testing"
	UseCasePhysicsSimulation UseCase = "physics-simulation"
)

const (
	fallbackPriority = registry.Mulberry32
	fallbackUseCase  = registry.SFC32
)

var byPriority = map[Priority]registry.Algorithm{
	PrioritySpeed:    registry.Mulberry32,
	PriorityQuality:  registry.Xorshift128,
	PriorityPeriod:   registry.SFC32,
	PriorityBalanced: registry.SFC32,
}

var byUseCase = map[UseCase]registry.Algorithm{
	UseCaseGameShuffle:          registry.Mulberry32,
	UseCaseProceduralGeneration: registry.SFC32,
	UseCaseMonteCarlo:           registry.Xorshift128,
	UseCaseCryptography:         registry.Xorshift128,
	UseCaseTesting:              registry.LCG,
	UseCasePhysicsSimulation:    registry.JSF32,
}

// Select returns the algorithm favouring priority. Unknown priorities yield mulberry32.
func Select(priority string) registry.Algorithm {
	if a, ok := byPriority[Priority(priority)]; ok {
		return a
	}
	return fallbackPriority
}

// Recommend returns the algorithm suited to useCase. Unknown use cases yield sfc32.
func Recommend(useCase string) registry.Algorithm {
	if a, ok := byUseCase[UseCase(useCase)]; ok {
		return a
	}
	return fallbackUseCase
}

// Compare renders every registered descriptor as a text table.
func Compare() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "PERIOD", "QUALITY", "SPEED", "DESCRIPTION")

	for _, a := range registry.List() {
		d, err := registry.Lookup(a)
		if err != nil {
			// List only yields registered identifiers
			continue
		}
		t.Row(string(d.ID), d.Name, d.Period, string(d.Quality), string(d.Speed), d.Description)
	}

	var b strings.Builder
	b.WriteString("PRNG algorithms (none are suitable for cryptographic use)\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
