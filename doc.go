// Package ef80escape implements a lossless, reversible mapping between
// arbitrary byte sequences and well-formed UTF-8 text.
//
// It is designed for passing mostly-UTF-8 but occasionally invalid data
// through UTF-8-only channels (JSON, text protocols, log pipelines) and
// reconstructing the original bytes exactly on the other side.
//
// # Encoding Scheme
//
// Bytes that cannot be decoded as UTF-8 (always in 0x80..0xFF) are
// carried one-to-one by a 128-codepoint band in the Unicode Private Use
// Area:
//
//	codepoint = U+EF80 + (byte - 0x80)
//
// A band codepoint (or the escape marker itself) that occurs naturally
// in valid UTF-8 input would be indistinguishable from an encoded byte,
// so it is escaped by prefixing the marker U+EF00:
//
//	Encode([]byte("abc"))            == "abc"
//	Encode([]byte{0xFF})             == ""
//	Encode([]byte(""))         == ""
//	Encode([]byte(""))         == ""
//
// Decode inverts all of the above. The pair satisfies
// Decode(Encode(b)) == b for every byte sequence b, and both functions
// are total: neither can fail, whatever the input.
//
// # Why Not Surrogate Escapes
//
// Python's PEP 383 solves the same problem with lone surrogates
// U+DC80..U+DCFF. Surrogates are not encodable in conformant UTF-8, so
// output in that convention is rejected by strict validators (including
// Go's own utf8.ValidString and Rust's str). The U+EF80..U+EFFF band,
// originally chosen by MirBSD's OPTU encoding, stays inside the Private
// Use Area and survives any conformant UTF-8 pipeline; U+EF00 is this
// package's escape marker on top of it.
//
// # Zero-Copy Results
//
// When no transformation is needed, Encode and Decode return a view
// that aliases the input's backing memory instead of allocating. Do not
// mutate a []byte after passing it to Encode, or while using a []byte
// returned by Decode whose source string is still reachable. Whether a
// particular call takes the zero-copy path is an optimization detail,
// not part of the contract.
package ef80escape
