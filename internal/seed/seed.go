package seed

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"strconv"
)

// Seed is a canonicalized generator seed. The zero value behaves as an empty text seed.
type Seed struct {
	b     []byte
	text  string
	num   uint32
	isNum bool
}

// FromText canonicalizes a text seed into its UTF-8 bytes.
func FromText(s string) Seed {
	return Seed{b: []byte(s), text: s}
}

// FromUint32 canonicalizes an integer seed into 4 bytes, least-significant first.
func FromUint32(v uint32) Seed {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return Seed{b: b, num: v, isNum: true}
}

// Bytes returns a copy of the canonical byte sequence.
func (s Seed) Bytes() []byte {
	out := make([]byte, len(s.b))
	copy(out, s.b)
	return out
}

// Folded is Fold(s.Bytes()) without the copy.
func (s Seed) Folded() uint32 {
	return Fold(s.b)
}

func (s Seed) IsNumeric() bool {
	return s.isNum
}

// String renders the seed the way the caller supplied it.
func (s Seed) String() string {
	if s.isNum {
		return strconv.FormatUint(uint64(s.num), 10)
	}
	return s.text
}

// Equal reports whether both seeds are of the same kind and canonicalize to the same bytes.
func (s Seed) Equal(o Seed) bool {
	return s.isNum == o.isNum && bytes.Equal(s.b, o.b)
}

// Each calls fn for every canonical byte in order, without copying.
func (s Seed) Each(fn func(x byte)) {
	for _, x := range s.b {
		fn(x)
	}
}

// Fold XOR-reduces b to one scalar. An empty sequence folds to 0.
func Fold(b []byte) uint32 {
	var h uint32
	for _, x := range b {
		h ^= uint32(x)
	}
	return h
}

// Rotl rotates x left by k bits, k in [1,31].
func Rotl(x uint32, k int) uint32 {
	return bits.RotateLeft32(x, k)
}
