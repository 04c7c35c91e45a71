package ef80escape

import (
	"bytes"
	"strings"
	"testing"
)

var benchInputs = []struct {
	name string
	data []byte
}{
	{"ascii", bytes.Repeat([]byte("the quick brown fox "), 51)},
	{"utf8", []byte(strings.Repeat("汉字编码 🤦🏼‍♂️ ", 32))},
	{"binary", bytes.Repeat([]byte{0x00, 0x7F, 0x80, 0xFF, 0xEE, 0x41}, 170)},
	{"reserved", []byte(strings.Repeat("x", 113))},
}

func BenchmarkEncode(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.data)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Encode(in.data)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, in := range benchInputs {
		encoded := Encode(in.data)
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(encoded)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Decode(encoded)
			}
		})
	}
}
