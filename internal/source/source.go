// Package source holds the generator state machines.
//
// Every generator owns a fixed-size uint32 state that is mutated in place by each
// draw. There is no peek and no rewind. None of them are suitable for
// cryptographic or adversarial use.
package source

// inv32 maps a uint32 into [0,1).
const inv32 = 1.0 / 4294967296.0 // 2^32

// Source is a single-owner, single-consumer infinite sequence.
// It is not safe for concurrent use.
type Source interface {
	// Uint32 advances the state once and returns the raw output word.
	Uint32() uint32
	// Float64 advances the state once and returns Uint32()/2^32.
	Float64() float64
}

func toFloat(x uint32) float64 {
	return float64(x) * inv32
}

// warmUp runs step n times discarding output.
func warmUp(step func() uint32, n int) {
	for i := 0; i < n; i++ {
		_ = step()
	}
}

var (
	_ Source = (*Mulberry32)(nil)
	_ Source = (*Xorshift128)(nil)
	_ Source = (*SFC32)(nil)
	_ Source = (*JSF32)(nil)
	_ Source = (*LCG)(nil)
)
