package seed

import (
	"sync"

	"github.com/zeebo/xxh3"
)

var hasherPool = sync.Pool{New: func() any { return xxh3.New() }}

// Derive returns an integer sub-seed for label, stable for a given (parent, label) pair.
// Use it to hand every concurrent consumer its own generator.
func Derive(parent Seed, label string) Seed {
	// acquire reusable hasher
	hasher := hasherPool.Get().(*xxh3.Hasher)
	hasher.Reset()

	// numeric and text seeds with equal bytes must not collide
	if parent.isNum {
		_, _ = hasher.Write([]byte{'#'})
	} else {
		_, _ = hasher.Write([]byte{'$'})
	}
	_, _ = hasher.Write(parent.b)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.Write([]byte(label))

	sum := hasher.Sum64()

	// release hasher after use
	hasherPool.Put(hasher)

	return FromUint32(uint32(sum) ^ uint32(sum>>32))
}
