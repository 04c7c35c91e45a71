package ef80escape

import (
	"unicode/utf8"
	"unsafe"
)

// unsafeString returns a string view over b without copying. The result
// aliases b; callers must not mutate b afterward.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// unsafeBytes returns a []byte view over s without copying. The result
// aliases the string's backing memory; callers must not mutate it.
func unsafeBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// validString converts an output buffer to string without copying.
// Precondition: the encode loop appends nothing but well-formed UTF-8
// to its buffer, so re-validation is skipped in normal builds. Builds
// tagged ef80debug re-check the precondition and panic on violation.
func validString(b []byte) string {
	if debugChecks && !utf8.Valid(b) {
		panic("ef80escape: internal error: encode buffer is not valid UTF-8")
	}
	return unsafeString(b)
}
