package riderslzss

import "github.com/go-faster/errors"

// Pack compresses src into a container with the greedy encoder. It
// never fails.
func Pack(src []byte) []byte {
	return PackWith(src, EncodeOptions{})
}

// PackWith compresses src with explicit encoder options.
func PackWith(src []byte, opts EncodeOptions) []byte {
	tokens := encodeTokens(src, opts)
	out := make([]byte, 0, HeaderSize+streamSize(tokens))
	out = append(out, EncodeHeader(uint32(len(src)))...)
	return appendStream(out, tokens)
}

// Unpack decompresses a container produced by Pack or by the original
// tool. The in-memory buffer built before a failure is discarded.
func Unpack(data []byte) ([]byte, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}
	out, err := NewDecoder(data[HeaderSize:], int(h.UnpackedSize)).Decode()
	if err != nil {
		return nil, errors.Wrap(err, "body")
	}
	if len(out) != int(h.UnpackedSize) {
		return nil, errors.Wrapf(ErrSizeMismatch, "decoded %d, header says %d", len(out), h.UnpackedSize)
	}
	return out, nil
}
