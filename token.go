package riderslzss

//go:generate go run github.com/dmarkham/enumer -transform snake_upper -type Kind -output kind_enum.go

// Kind tags a Token as a raw literal or an LZ back-reference.
type Kind byte

const (
	Raw Kind = 0 // one literal byte
	LZ  Kind = 1 // copy Length bytes from Distance bytes back
)

// Token is one decoded unit of the stream. Exactly one variant is
// meaningful per Kind: Lit for Raw, Distance and Length for LZ.
type Token struct {
	Kind     Kind
	Lit      byte
	Distance int // 1..MaxDistance, backward from current output end
	Length   int // 1..MaxLength
}

// flagBit is the token's contribution to its flag group.
func (t Token) flagBit() byte {
	if t.Kind == LZ {
		return 1
	}
	return 0
}

// payloadSize is the number of stream bytes after the flag bit.
func (t Token) payloadSize() int {
	if t.Kind == LZ {
		return 2
	}
	return 1
}
