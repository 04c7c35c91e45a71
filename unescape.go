package ef80escape

import (
	"strings"

	"github.com/Neumenon/ef80escape/internal/sequence"
)

// decodeState tracks whether the previous unit was an unconsumed escape
// marker. The machine has exactly these two states; there is no
// terminal state and no end-of-input cleanup.
type decodeState int

const (
	stateNormal decodeState = iota
	stateEscaped
)

// Decode converts text produced by Encode back to the original bytes.
//
// Unescaped band codepoints become their original byte, an escape
// marker keeps the following reserved codepoint verbatim, and
// everything else copies through unchanged. Decode never fails: on text
// that Encode cannot produce — an escape marker not followed by a
// reserved codepoint, including a marker at end of input — the marker
// is silently dropped and decoding continues.
//
// If s contains no 0xEE byte, the returned slice aliases the string's
// backing memory instead of copying; it must not be mutated.
func Decode(s string) []byte {
	if strings.IndexByte(s, sequence.Lead) < 0 {
		return unsafeBytes(s)
	}
	return AppendDecode(make([]byte, 0, len(s)), s)
}

// AppendDecode appends the decoded form of s to dst and returns the
// extended buffer. It never takes the zero-copy path.
func AppendDecode(dst []byte, s string) []byte {
	state := stateNormal
	for i := 0; i < len(s); {
		b := s[i]
		if b == sequence.Lead && i+2 < len(s) && sequence.IsReserved(s[i+1], s[i+2]) {
			b1, b2 := s[i+1], s[i+2]
			switch {
			case state == stateEscaped:
				// Un-escape: the reserved unit stands for itself.
				dst = append(dst, b, b1, b2)
				state = stateNormal
			case b1 == sequence.EscapeB1:
				// Escape marker. Emits nothing by itself.
				state = stateEscaped
			default:
				dst = append(dst, sequence.Byte(b1, b2))
			}
			i += 3
			continue
		}
		// Not a reserved unit. A pending escape marker is dropped.
		state = stateNormal
		dst = append(dst, b)
		i++
	}
	return dst
}
