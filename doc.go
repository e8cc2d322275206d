// Package riderslzss implements the LZSS variant used by Sonic Riders
// asset containers (PC and Xbox versions).
//
// Container layout:
//
//	offset 0x00: uint32 LE magic = 0x80000001
//	offset 0x04: uint32 LE unpacked size
//	offset 0x08: zero padding up to 0x80
//	offset 0x80: token stream = repeated { flag byte, token payloads }
//
// Each flag byte classifies the next 8 tokens, most significant bit
// first: bit 0 is a raw token (one literal byte), bit 1 is an LZ token
// (distance byte, then length byte; both taken at face value). An LZ
// token copies length bytes starting distance bytes back in the output
// produced so far; distance may be smaller than length, in which case
// the copy consumes bytes it has just written.
//
// Pack and Unpack operate on whole in-memory buffers. The format has
// no checksum and no streaming framing.
package riderslzss
