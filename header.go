package riderslzss

import (
	"encoding/binary"

	"github.com/go-faster/errors"
)

// Container format constants.
const (
	Magic      uint32 = 0x80000001 // container signature, little-endian
	HeaderSize        = 0x80       // fixed header length, independent of payload

	// LZ token fields are single bytes taken at face value.
	MaxDistance = 0xFF
	MaxLength   = 0xFF

	hMagic = 0 // uint32 LE
	hSize  = 4 // uint32 LE, rest of header is zero padding
)

var bin = binary.LittleEndian

// Header is the fixed 0x80-byte container header. Immutable once
// decoded.
type Header struct {
	UnpackedSize uint32
}

// DecodeHeader reads the container header from the first HeaderSize
// bytes of data. Padding bytes are not validated.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errors.Wrapf(ErrTruncatedInput, "header: got %d bytes, need %d", len(data), HeaderSize)
	}
	if m := bin.Uint32(data[hMagic:]); m != Magic {
		return Header{}, errors.Wrapf(ErrInvalidMagic, "got 0x%08x, want 0x%08x", m, Magic)
	}
	return Header{
		UnpackedSize: bin.Uint32(data[hSize:]),
	}, nil
}

// EncodeHeader emits magic, unpacked size and zero padding, exactly
// HeaderSize bytes.
func EncodeHeader(unpackedSize uint32) []byte {
	buf := make([]byte, HeaderSize)
	bin.PutUint32(buf[hMagic:], Magic)
	bin.PutUint32(buf[hSize:], unpackedSize)
	return buf
}
