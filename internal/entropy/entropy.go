// Package entropy hands out non-reproducible seeds for callers that did not supply one.
// It is never used on the draw path.
package entropy

import (
	"sync/atomic"
	"time"
)

// Constants from the SplitMix64 reference implementation.
const (
	splitmix64Increment = 0x9E3779B97F4A7C15
	splitmix64Mul1      = 0xBF58476D1CE4E5B9
	splitmix64Mul2      = 0x94D049BB133111EB
)

// SplitMix64 state. Updated via atomic CAS.
var state atomic.Uint64

func init() { Reseed(time.Now().UnixNano()) }

// Reseed resets the shared state. Tests use it to pin the sequence.
func Reseed(seed int64) {
	z := mix(uint64(seed) + splitmix64Increment)
	if z == 0 {
		z = splitmix64Increment
	}
	state.Store(z)
}

// Uint32 returns a fresh 32-bit seed. Safe for concurrent use.
func Uint32() uint32 {
	x := next()
	return uint32(x>>32) ^ uint32(x)
}

// next advances the state atomically and returns a mixed 64-bit value.
func next() uint64 {
	for {
		old := state.Load()
		x := old + splitmix64Increment
		if state.CompareAndSwap(old, x) {
			return mix(x)
		}
	}
}

func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * splitmix64Mul1
	z = (z ^ (z >> 27)) * splitmix64Mul2
	return z ^ (z >> 31)
}
