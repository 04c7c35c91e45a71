// Package sequence defines the wire form shared by the batch and
// streaming transducers: the reserved 3-byte units and the affine
// mapping between raw bytes and band codepoints.
//
// All reserved codepoints sit in U+0800..U+FFFF, so each has a 3-byte
// UTF-8 form starting with 0xEE:
//
//	U+EF00: EE BC 80   escape marker
//	U+EF80: EE BE 80   band start  (byte 0x80)
//	U+EFBF: EE BE BF   band middle (byte 0xBF)
//	U+EFC0: EE BF 80   band middle (byte 0xC0)
//	U+EFFF: EE BF BF   band end    (byte 0xFF)
package sequence

const (
	// Lead is the first byte of the 3-byte UTF-8 form of every
	// reserved codepoint. Its presence triggers reserved-unit scanning
	// in both directions.
	Lead = 0xEE

	// Escape marker U+EF00, continuation bytes.
	EscapeB1 = 0xBC
	EscapeB2 = 0x80
)

// IsReserved reports whether the two bytes following a 0xEE lead form
// the escape marker U+EF00 or a band codepoint U+EF80..U+EFFF. Both
// transducers use it identically; it recognizes exactly the units that
// AppendByte and the escape path can emit.
func IsReserved(b1, b2 byte) bool {
	return (b1 == EscapeB1 && b2 == EscapeB2) ||
		((b1|1) == 0xBF && b2 >= 0x80 && b2 <= 0xBF)
}

// PutByte writes the band codepoint for byte b (must be >= 0x80) into
// p[0:3] in its 3-byte UTF-8 form: U+EF80 + (b - 0x80).
func PutByte(p []byte, b byte) {
	p[0] = Lead
	p[1] = 0xBE + ((b ^ 0x80) >> 6)
	p[2] = (b | 0x40) ^ 0x40
}

// AppendByte appends the band codepoint for byte b (must be >= 0x80).
func AppendByte(dst []byte, b byte) []byte {
	var u [3]byte
	PutByte(u[:], b)
	return append(dst, u[0], u[1], u[2])
}

// Byte is the inverse of AppendByte: it recovers the original byte from
// the continuation bytes of a band codepoint.
func Byte(b1, b2 byte) byte {
	return (b1&3)<<6 | b2&63
}
