package seed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFromUint32_LittleEndian verifies integer seeds are canonicalized least-significant byte first.
func TestFromUint32_LittleEndian(t *testing.T) {
	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, FromUint32(0x12345678).Bytes())
	require.Equal(t, []byte{0, 0, 0, 0}, FromUint32(0).Bytes())
}

// TestFromText_UTF8 verifies text seeds keep their UTF-8 encoding.
func TestFromText_UTF8(t *testing.T) {
	require.Equal(t, []byte("hello"), FromText("hello").Bytes())
	require.Equal(t, []byte{0xc3, 0xa9}, FromText("é").Bytes())
	require.Empty(t, FromText("").Bytes())
	require.Empty(t, Seed{}.Bytes())
}

// TestSeed_BytesIsCopy verifies callers cannot mutate an ingested seed.
func TestSeed_BytesIsCopy(t *testing.T) {
	s := FromText("abc")
	b := s.Bytes()
	b[0] = 'z'
	require.Equal(t, []byte("abc"), s.Bytes())
}

// TestFold_Literals verifies XOR reduction on known inputs.
func TestFold_Literals(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected uint32
	}{
		{"empty", nil, 0},
		{"single", []byte{0xab}, 0xab},
		{"one to four", []byte{1, 2, 3, 4}, 4},
		{"cancels", []byte{7, 7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Fold(tt.input))
		})
	}

	require.Equal(t, Fold([]byte{1, 2, 3, 4}), FromUint32(0x04030201).Folded())
}

// TestRotl_Literals verifies 32-bit rotation wraps the high bit around.
func TestRotl_Literals(t *testing.T) {
	require.Equal(t, uint32(2), Rotl(1, 1))
	require.Equal(t, uint32(1), Rotl(0x80000000, 1))
	require.Equal(t, uint32(0x80000000), Rotl(1, 31))
	require.Equal(t, uint32(0x23456781), Rotl(0x12345678, 4))
}

// TestSeed_String verifies seeds render the value the caller supplied.
func TestSeed_String(t *testing.T) {
	require.Equal(t, "hello", FromText("hello").String())
	require.Equal(t, "42", FromUint32(42).String())
	require.True(t, FromUint32(42).IsNumeric())
	require.False(t, FromText("42").IsNumeric())
}

// TestSeed_Equal verifies equality takes the seed kind into account.
func TestSeed_Equal(t *testing.T) {
	require.True(t, FromText("abcd").Equal(FromText("abcd")))
	require.False(t, FromText("abcd").Equal(FromText("abce")))
	// "xV4\x12" has the same bytes as 0x12345678
	require.False(t, FromText("xV4\x12").Equal(FromUint32(0x12345678)))
	require.True(t, Seed{}.Equal(FromText("")))
}

// TestDerive_Deterministic verifies sub-seeds are stable and label-dependent.
func TestDerive_Deterministic(t *testing.T) {
	parent := FromText("world-1")

	a := Derive(parent, "worker-0")
	b := Derive(parent, "worker-0")
	c := Derive(parent, "worker-1")

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.True(t, a.IsNumeric())
}

// TestDerive_KindMatters verifies text and numeric parents with equal bytes derive differently.
func TestDerive_KindMatters(t *testing.T) {
	text := Derive(FromText("xV4\x12"), "x")
	num := Derive(FromUint32(0x12345678), "x")
	require.False(t, text.Equal(num))
}

// TestDerive_Diversity verifies many labels produce mostly distinct sub-seeds.
func TestDerive_Diversity(t *testing.T) {
	parent := FromUint32(7)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[Derive(parent, string(rune('a'+i%26))+string(rune(i))).String()] = true
	}
	require.Greater(t, len(seen), 990)
}
