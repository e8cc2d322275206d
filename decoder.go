package riderslzss

import (
	"github.com/go-faster/errors"
)

//go:generate go run github.com/dmarkham/enumer -transform snake_upper -type State -output state_enum.go

// State is the decoder position in the stream grammar.
type State byte

const (
	ReadingFlag State = iota
	ReadingToken
	Done
	Failed
)

const flagBits = 8

// Decoder reconstructs the unpacked payload from a token stream.
//
// The output buffer doubles as the lookback window for LZ tokens;
// there is no separate dictionary. A Decoder is single-use.
type Decoder struct {
	src    []byte
	pos    int
	out    []byte
	target int
	flags  byte
	bits   int
	state  State
	err    error
}

// NewDecoder returns a Decoder over a token stream (the container body
// after the header) that will produce exactly unpackedSize bytes.
func NewDecoder(stream []byte, unpackedSize int) *Decoder {
	return &Decoder{
		src:    stream,
		out:    make([]byte, 0, unpackedSize),
		target: unpackedSize,
	}
}

// State reports the current machine state.
func (d *Decoder) State() State { return d.state }

func (d *Decoder) fail(err error) error {
	d.state = Failed
	d.err = err
	return err
}

func (d *Decoder) readByte() (byte, bool) {
	if d.pos >= len(d.src) {
		return 0, false
	}
	b := d.src[d.pos]
	d.pos++
	return b, true
}

// Decode runs the state machine to Done or Failed. On Done the result
// is exactly unpackedSize bytes; stream bytes past the last applied
// token are ignored.
func (d *Decoder) Decode() ([]byte, error) {
	for {
		switch d.state {
		case Done:
			return d.out, nil
		case Failed:
			return nil, d.err
		case ReadingFlag:
			if len(d.out) >= d.target {
				d.state = Done
				continue
			}
			b, ok := d.readByte()
			if !ok {
				return nil, d.fail(errors.Wrapf(ErrTruncatedInput,
					"flag byte: produced %d of %d", len(d.out), d.target))
			}
			d.flags = b
			d.bits = flagBits
			d.state = ReadingToken
		case ReadingToken:
			if len(d.out) >= d.target {
				d.state = Done
				continue
			}
			if d.bits == 0 {
				d.state = ReadingFlag
				continue
			}
			// Flag bits select tokens most significant bit first.
			isLZ := d.flags&0x80 != 0
			d.flags <<= 1
			d.bits--

			if !isLZ {
				b, ok := d.readByte()
				if !ok {
					return nil, d.fail(errors.Wrapf(ErrTruncatedInput,
						"raw token: produced %d of %d", len(d.out), d.target))
				}
				d.out = append(d.out, b)
				continue
			}

			distance, ok := d.readByte()
			if !ok {
				return nil, d.fail(errors.Wrap(ErrTruncatedInput, "lz token: distance byte"))
			}
			length, ok := d.readByte()
			if !ok {
				return nil, d.fail(errors.Wrap(ErrTruncatedInput, "lz token: length byte"))
			}
			if err := d.copy(int(distance), int(length)); err != nil {
				return nil, err
			}
		}
	}
}

// copy applies an LZ token. Bytes move one at a time: each written
// byte is visible to the next read, so distance < length replays the
// bytes this same token just produced. A copy that would cross the
// declared unpacked size truncates at the boundary.
func (d *Decoder) copy(distance, length int) error {
	if distance == 0 || distance > len(d.out) {
		return d.fail(errors.Wrapf(ErrInvalidOffset,
			"distance %d with %d bytes produced", distance, len(d.out)))
	}
	src := len(d.out) - distance
	for i := 0; i < length && len(d.out) < d.target; i++ {
		d.out = append(d.out, d.out[src+i])
	}
	return nil
}
