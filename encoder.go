package riderslzss

// minMatch is the shortest profitable LZ run: an LZ token carries the
// same two payload bytes as two literals but spends one flag bit less.
const minMatch = 2

// EncodeOptions tunes the match finder. The zero value is the greedy
// single-pass encoder.
type EncodeOptions struct {
	// Lazy enables one-step lazy parsing: when the match starting one
	// byte further is strictly longer, a literal is emitted first and
	// the longer match taken. Better ratio on shifted patterns at
	// roughly double the search cost.
	Lazy bool
}

// matchAt finds the longest back-reference reproducing src[p:],
// searching distances 1..min(MaxDistance, p).
//
// Matching runs over src itself: during decoding the output equals
// the already-encoded prefix, so comparing positions at or past p
// simulates the per-byte overlap copy (src[p-d+n] for p-d+n >= p is
// exactly the byte the copy will have written by step n). Equal-length
// candidates resolve to the smallest distance.
func matchAt(src []byte, p int) (distance, length int) {
	maxDist := p
	if maxDist > MaxDistance {
		maxDist = MaxDistance
	}
	maxLen := len(src) - p
	if maxLen > MaxLength {
		maxLen = MaxLength
	}
	for d := 1; d <= maxDist; d++ {
		n := 0
		for n < maxLen && src[p-d+n] == src[p+n] {
			n++
		}
		if n > length {
			distance, length = d, n
			if length == maxLen {
				break
			}
		}
	}
	return distance, length
}

// encodeTokens scans src left to right and emits the token sequence.
// It never fails: input with no repeats degenerates to all-raw.
func encodeTokens(src []byte, opts EncodeOptions) []Token {
	var tokens []Token
	p := 0
	for p < len(src) {
		d, n := matchAt(src, p)
		if n < minMatch {
			tokens = append(tokens, Token{Kind: Raw, Lit: src[p]})
			p++
			continue
		}
		if opts.Lazy && p+1 < len(src) {
			if d2, n2 := matchAt(src, p+1); n2 > n {
				tokens = append(tokens,
					Token{Kind: Raw, Lit: src[p]},
					Token{Kind: LZ, Distance: d2, Length: n2})
				p += 1 + n2
				continue
			}
		}
		tokens = append(tokens, Token{Kind: LZ, Distance: d, Length: n})
		p += n
	}
	return tokens
}

// appendStream serializes tokens into dst as flag groups of eight:
// one flag byte (tokens selected most significant bit first), then
// each token's payload in emission order. A partial final group keeps
// its unused low bits zero; the decoder never consumes them.
func appendStream(dst []byte, tokens []Token) []byte {
	for len(tokens) > 0 {
		group := tokens
		if len(group) > flagBits {
			group = group[:flagBits]
		}
		tokens = tokens[len(group):]

		var flags byte
		for i, t := range group {
			flags |= t.flagBit() << (7 - i)
		}
		dst = append(dst, flags)
		for _, t := range group {
			if t.Kind == LZ {
				dst = append(dst, byte(t.Distance), byte(t.Length))
			} else {
				dst = append(dst, t.Lit)
			}
		}
	}
	return dst
}

// streamSize is the exact serialized size of the token stream.
func streamSize(tokens []Token) int {
	n := (len(tokens) + flagBits - 1) / flagBits
	for _, t := range tokens {
		n += t.payloadSize()
	}
	return n
}
