package riderslzss

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/romhack/riderslzss/internal/gold"
)

func randData(n int) []byte {
	s := rand.NewSource(10)
	r := rand.New(s)
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		panic(err)
	}
	return buf
}

func TestPackRoundTrip(t *testing.T) {
	cases := map[string][]byte{
		"Empty":     {},
		"OneByte":   {0x41},
		"Pattern":   []byte("ABABABAB"),
		"Run":       bytes.Repeat([]byte{0x41}, 300),
		"Text":      []byte("Hello, world! Hello, world! Hello?"),
		"Zeros":     make([]byte, 1024),
		"Random":    randData(4 * 1024),
		"AllValues": {0, 1, 2, 253, 254, 255, 255, 254, 253, 2, 1, 0},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			for _, opts := range []EncodeOptions{{}, {Lazy: true}} {
				packed := PackWith(data, opts)
				out, err := Unpack(packed)
				require.NoError(t, err)
				require.Equal(t, data, out)
			}
		})
	}
}

func TestPackEmpty(t *testing.T) {
	packed := Pack(nil)
	require.Len(t, packed, HeaderSize)

	out, err := Unpack(packed)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestPackRunEmitsOverlapCopy(t *testing.T) {
	// 300 equal bytes must compress through a distance-1 copy, far
	// below the all-literal size.
	packed := Pack(bytes.Repeat([]byte{0x41}, 300))
	require.Less(t, len(packed), HeaderSize+16)
}

func TestUnpackBadMagic(t *testing.T) {
	packed := Pack([]byte("data"))
	packed[0] ^= 0xFF

	_, err := Unpack(packed)
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestUnpackTruncated(t *testing.T) {
	t.Run("CutBody", func(t *testing.T) {
		packed := Pack(bytes.Repeat([]byte{0x41}, 300))

		_, err := Unpack(packed[:HeaderSize+2])
		require.ErrorIs(t, err, ErrTruncatedInput)
	})
	t.Run("DeclaredTooLarge", func(t *testing.T) {
		// Header promises 10 bytes, stream provides one literal.
		data := append(EncodeHeader(10), 0x00, 'A')

		_, err := Unpack(data)
		require.ErrorIs(t, err, ErrTruncatedInput)
	})
	t.Run("HeaderOnly", func(t *testing.T) {
		_, err := Unpack(EncodeHeader(1))
		require.ErrorIs(t, err, ErrTruncatedInput)
	})
}

func TestPackGold(t *testing.T) {
	for _, tt := range []struct {
		name string
		data []byte
	}{
		{"pack_empty", nil},
		{"pack_abab", []byte("ABABABAB")},
		{"pack_run300", bytes.Repeat([]byte{0x41}, 300)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			gold.Bytes(t, Pack(tt.data), tt.name)
		})
	}
}

func TestUnpackGold(t *testing.T) {
	// Vectors pin the flag bit order, the face-value field mapping and
	// the flag-group layout.
	for _, tt := range []struct {
		name string
		want []byte
	}{
		{"pack_empty", []byte{}},
		{"pack_abab", []byte("ABABABAB")},
		{"pack_run300", bytes.Repeat([]byte{0x41}, 300)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			packed := gold.ReadFile(t, tt.name+".raw")

			out, err := Unpack(packed)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}
