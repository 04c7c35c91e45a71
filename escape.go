package ef80escape

import (
	"bytes"
	"unicode/utf8"

	"github.com/Neumenon/ef80escape/internal/sequence"
)

// Encode converts an arbitrary byte sequence to well-formed UTF-8 text.
//
// Valid UTF-8 passes through unchanged, invalid bytes become band
// codepoints, and naturally occurring reserved codepoints are prefixed
// with the escape marker U+EF00. The result decodes back to data
// exactly via Decode. Encode never fails and its output is always valid
// UTF-8.
//
// If data is already valid UTF-8 and contains no 0xEE byte, the
// returned string aliases data instead of copying; see the package
// documentation for the aliasing caveat.
func Encode(data []byte) string {
	if utf8.Valid(data) && bytes.IndexByte(data, sequence.Lead) < 0 {
		// Nothing to replace, nothing to escape.
		return unsafeString(data)
	}
	return validString(AppendEncode(make([]byte, 0, len(data)), data))
}

// AppendEncode appends the encoded form of data to dst and returns the
// extended buffer. It never takes the zero-copy path.
func AppendEncode(dst, data []byte) []byte {
	rest := data
	for len(rest) > 0 {
		n := validUpTo(rest)
		dst = appendEscaped(dst, rest[:n])
		if n == len(rest) {
			break
		}
		// rest[n] starts an invalid sequence. Replace that one byte
		// with its band codepoint and rescan from the next.
		dst = sequence.AppendByte(dst, rest[n])
		rest = rest[n+1:]
	}
	return dst
}

// validUpTo returns the length of the maximal valid-UTF-8 prefix of p.
// An incomplete trailing sequence counts as invalid at its first byte.
func validUpTo(p []byte) int {
	i := 0
	for i < len(p) {
		if p[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, n := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && n < 2 {
			return i
		}
		i += n
	}
	return len(p)
}

// appendEscaped copies a valid UTF-8 run to dst, inserting the escape
// marker before any reserved unit that occurs naturally in the run.
func appendEscaped(dst, run []byte) []byte {
	for i := 0; i < len(run); i++ {
		b := run[i]
		if b == sequence.Lead && i+2 < len(run) && sequence.IsReserved(run[i+1], run[i+2]) {
			dst = append(dst, sequence.Lead, sequence.EscapeB1, sequence.EscapeB2)
		}
		dst = append(dst, b)
	}
	return dst
}
