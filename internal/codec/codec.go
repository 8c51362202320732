package codec

import "encoding/binary"

// Binary encoding utilities for little-endian scan elements.
//
// Target engines lay their runtime data out little-endian, so every decoded
// element — 16/32/64-bit numerics and 32-bit name identifiers — goes through
// these helpers.
//
// Implementation: Uses encoding/binary.LittleEndian. The standard library
// implementation is already highly optimized by the compiler; unsafe pointer
// variants provided no measurable benefit.

// Element widths supported by the scanner.
const (
	Width16 = 2
	Width32 = 4
	Width64 = 8
)

// ValidWidth reports whether w is a supported numeric element width.
func ValidWidth(w int) bool {
	return w == Width16 || w == Width32 || w == Width64
}

// Uint decodes the width-byte little-endian unsigned integer at b[off].
// width must be one of Width16, Width32, Width64 and b[off:off+width] must be
// in bounds.
func Uint(b []byte, off, width int) uint64 {
	switch width {
	case Width16:
		return uint64(binary.LittleEndian.Uint16(b[off : off+2]))
	case Width32:
		return uint64(binary.LittleEndian.Uint32(b[off : off+4]))
	default:
		return binary.LittleEndian.Uint64(b[off : off+8])
	}
}

// PutUint writes v to b[off] as a width-byte little-endian unsigned integer.
// It is the inverse of Uint and exists for snapshot builders and tests.
func PutUint(b []byte, off, width int, v uint64) {
	switch width {
	case Width16:
		binary.LittleEndian.PutUint16(b[off:off+2], uint16(v))
	case Width32:
		binary.LittleEndian.PutUint32(b[off:off+4], uint32(v))
	default:
		binary.LittleEndian.PutUint64(b[off:off+8], v)
	}
}

// ReadU16 reads a uint16 value from the buffer at the specified offset in little-endian format.
func ReadU16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in little-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// ReadU64 reads a uint64 value from the buffer at the specified offset in little-endian format.
func ReadU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}
