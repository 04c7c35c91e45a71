package charset

import (
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/Neumenon/ef80escape/internal/sequence"
)

// escaper is the streaming forward transducer (raw bytes to escaped
// UTF-8). It is stateless: every decision is local to a single rune or
// a single invalid byte, so only chunk boundaries need care.
type escaper struct {
	transform.NopResetter
}

func (escaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	safe := encodeSafeLen(src, atEOF)
	for nSrc < safe {
		b := src[nSrc]
		if b < utf8.RuneSelf {
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
			nSrc++
			continue
		}
		r, size := utf8.DecodeRune(src[nSrc:safe])
		if r == utf8.RuneError && size < 2 {
			// Invalid byte: replace with its band codepoint.
			if len(dst)-nDst < 3 {
				return nDst, nSrc, transform.ErrShortDst
			}
			sequence.PutByte(dst[nDst:nDst+3], b)
			nDst += 3
			nSrc++
			continue
		}
		// Valid rune of size 2..4 bytes. The reserved units are exactly
		// the 0xEE-led 3-byte runes, so the escape decision never needs
		// bytes outside the rune itself.
		need := size
		reserved := b == sequence.Lead && sequence.IsReserved(src[nSrc+1], src[nSrc+2])
		if reserved {
			need += 3
		}
		if len(dst)-nDst < need {
			return nDst, nSrc, transform.ErrShortDst
		}
		if reserved {
			dst[nDst] = sequence.Lead
			dst[nDst+1] = sequence.EscapeB1
			dst[nDst+2] = sequence.EscapeB2
			nDst += 3
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	if nSrc < len(src) {
		err = transform.ErrShortSrc
	}
	return nDst, nSrc, err
}

// encodeSafeLen returns how much of src is decidable now. Before EOF a
// trailing sequence that might still grow into a complete rune is held
// back; bytes that can never become valid are decidable immediately.
func encodeSafeLen(src []byte, atEOF bool) int {
	if atEOF {
		return len(src)
	}
	for k := len(src) - 1; k >= 0 && k > len(src)-utf8.UTFMax; k-- {
		if utf8.RuneStart(src[k]) {
			if !utf8.FullRune(src[k:]) {
				return k
			}
			break
		}
	}
	return len(src)
}

// unescaper is the streaming backward transducer (escaped UTF-8 to raw
// bytes). It carries the two-state escape machine across Transform
// calls so reserved units split between reads decode correctly.
type unescaper struct {
	escaped bool
}

func (u *unescaper) Reset() { u.escaped = false }

func (u *unescaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b == sequence.Lead && len(src)-nSrc >= 3 && sequence.IsReserved(src[nSrc+1], src[nSrc+2]) {
			b1, b2 := src[nSrc+1], src[nSrc+2]
			switch {
			case u.escaped:
				// Un-escape: the reserved unit stands for itself.
				if len(dst)-nDst < 3 {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst], dst[nDst+1], dst[nDst+2] = b, b1, b2
				nDst += 3
				u.escaped = false
			case b1 == sequence.EscapeB1:
				// Escape marker. Emits nothing by itself.
				u.escaped = true
			default:
				if nDst == len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst] = sequence.Byte(b1, b2)
				nDst++
			}
			nSrc += 3
			continue
		}
		if b == sequence.Lead && len(src)-nSrc < 3 && !atEOF {
			// Could still be the start of a reserved unit.
			return nDst, nSrc, transform.ErrShortSrc
		}
		// Not a reserved unit. A pending escape marker is dropped.
		u.escaped = false
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
