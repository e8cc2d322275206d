package riderslzss

import "github.com/go-faster/errors"

// Decode failures. All are recoverable: the caller gets a typed error
// and no partial output.
var (
	// ErrInvalidMagic means the first four header bytes are not the
	// container signature.
	ErrInvalidMagic = errors.New("invalid magic")
	// ErrTruncatedInput means the token stream ended before producing
	// the declared unpacked size, or ended in the middle of a token.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrInvalidOffset means an LZ token references a position before
	// the start of the output produced so far.
	ErrInvalidOffset = errors.New("invalid offset")
	// ErrSizeMismatch means the decoded length disagrees with the
	// declared unpacked size.
	ErrSizeMismatch = errors.New("size mismatch")
)
