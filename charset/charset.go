// Package charset exposes the ef80escape codec through
// golang.org/x/text, so it plugs into the standard streaming text
// pipeline (encoding.Decoder.Reader, transform.NewWriter, and friends).
//
// The orientation follows x/text convention, where a Decoder converts a
// foreign encoding to UTF-8 and an Encoder converts UTF-8 back. Here
// the "foreign encoding" is raw binary: the decoder escapes arbitrary
// bytes into valid UTF-8 like ef80escape.Encode, and the encoder
// recovers the original bytes like ef80escape.Decode.
package charset

import (
	"golang.org/x/text/encoding"
)

// EF80 is the escape codec as an encoding.Encoding.
//
// Both directions are total. Unlike encoders for real charsets, the
// encoder side has no unmappable runes: every rune maps, and text the
// decoder cannot have produced degrades by dropping dangling escape
// markers, exactly as ef80escape.Decode does.
var EF80 encoding.Encoding = ef80{}

type ef80 struct{}

// NewDecoder returns a streaming form of the forward transducer
// (bytes to escaped UTF-8).
func (ef80) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &escaper{}}
}

// NewEncoder returns a streaming form of the backward transducer
// (escaped UTF-8 to bytes).
func (ef80) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &unescaper{}}
}
