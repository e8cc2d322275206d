package riderslzss

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeTokensLiteralOnly(t *testing.T) {
	tokens := encodeTokens([]byte("ABC"), EncodeOptions{})
	require.Equal(t, []Token{
		{Kind: Raw, Lit: 'A'},
		{Kind: Raw, Lit: 'B'},
		{Kind: Raw, Lit: 'C'},
	}, tokens)
}

func TestEncodeTokensMinimalMatch(t *testing.T) {
	tokens := encodeTokens([]byte("ABABABAB"), EncodeOptions{})
	require.Equal(t, []Token{
		{Kind: Raw, Lit: 'A'},
		{Kind: Raw, Lit: 'B'},
		{Kind: LZ, Distance: 2, Length: 6},
	}, tokens)
}

func TestEncodeTokensRun(t *testing.T) {
	tokens := encodeTokens(bytes.Repeat([]byte{0x41}, 300), EncodeOptions{})
	require.Equal(t, []Token{
		{Kind: Raw, Lit: 0x41},
		{Kind: LZ, Distance: 1, Length: MaxLength},
		{Kind: LZ, Distance: 1, Length: 44},
	}, tokens)
}

func TestEncodeTokensTieBreak(t *testing.T) {
	// The trailing "AB" matches at distance 5 and at distance 3 with
	// equal length; the nearest one wins.
	tokens := encodeTokens([]byte("ABABCAB"), EncodeOptions{})
	last := tokens[len(tokens)-1]
	require.Equal(t, Token{Kind: LZ, Distance: 3, Length: 2}, last)
}

func TestMatchAtOverlap(t *testing.T) {
	src := bytes.Repeat([]byte{0x41}, 600)

	d, n := matchAt(src, 1)
	require.Equal(t, 1, d)
	require.Equal(t, MaxLength, n)
}

func TestMatchAtWindowCap(t *testing.T) {
	// The only occurrence of "XY" is more than MaxDistance back.
	src := append([]byte("XY"), bytes.Repeat([]byte{'.'}, MaxDistance)...)
	src = append(src, 'X', 'Y')

	_, n := matchAt(src, len(src)-2)
	require.Less(t, n, minMatch)
}

func TestEncodeTokensLazy(t *testing.T) {
	// At the second 'A' the greedy match is 2 bytes, while one byte
	// later "BCDEF" matches with length 5.
	src := []byte("ABQBCDEFABCDEF")

	greedy := encodeTokens(src, EncodeOptions{})
	lazy := encodeTokens(src, EncodeOptions{Lazy: true})

	require.Contains(t, lazy, Token{Kind: LZ, Distance: 6, Length: 5})
	require.Less(t, streamSize(lazy), streamSize(greedy))

	for _, opts := range []EncodeOptions{{}, {Lazy: true}} {
		out, err := Unpack(PackWith(src, opts))
		require.NoError(t, err)
		require.Equal(t, src, out)
	}
}

func TestAppendStreamPartialGroup(t *testing.T) {
	tokens := []Token{
		{Kind: Raw, Lit: 'A'},
		{Kind: Raw, Lit: 'B'},
		{Kind: LZ, Distance: 2, Length: 6},
	}
	stream := appendStream(nil, tokens)
	require.Equal(t, []byte{0x20, 'A', 'B', 0x02, 0x06}, stream)
	require.Equal(t, streamSize(tokens), len(stream))
}

func TestAppendStreamFullGroups(t *testing.T) {
	var tokens []Token
	for i := 0; i < 16; i++ {
		tokens = append(tokens, Token{Kind: Raw, Lit: byte(i)})
	}
	stream := appendStream(nil, tokens)
	require.Len(t, stream, 18)
	require.Zero(t, stream[0])
	require.Zero(t, stream[9])
}
