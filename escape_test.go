package ef80escape

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// ============================================================
// Forward Transducer Tests
// ============================================================

func TestEncode_PassThrough(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"abcd  efg",
		"汉字",
		"🤦🏼‍♂️",
		"[字符 编码]",
		"mixed ascii 和 中文",
	}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			got := Encode([]byte(tt))
			if got != tt {
				t.Errorf("Encode(%q) = %q, want input unchanged", tt, got)
			}
		})
	}
}

func TestEncode_InvalidBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"band start", []byte{0x80}, ""},
		{"band end", []byte{0xFF}, ""},
		{"band middle low", []byte{0xBF}, ""},
		{"band middle high", []byte{0xC0}, ""},
		{"invalid between ascii", []byte("a\xFFb"), "ab"},
		{"run of invalid", []byte{0xFF, 0xFE, 0xFD}, ""},
		{"truncated multibyte", []byte{0xE4, 0xB8}, ""},
		{"lone lead", []byte{0xEE}, ""},
		{"lead then ascii", []byte{0xEE, 'A'}, "A"},
		{"invalid after valid cjk", []byte("汉\xC2"), "汉"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input)
			if got != tt.want {
				t.Errorf("Encode(% x) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncode_EscapesReservedCodepoints(t *testing.T) {
	tests := []struct {
		name  string
		input string // valid UTF-8, fed as bytes
		want  string
	}{
		{"band codepoint", "", ""},
		{"escape marker", "", ""},
		{"band start", "", ""},
		{"between text", "az", "az"},
		{"adjacent reserved", "", ""},
		{"non-reserved 0xEE rune", "", ""},
		{"below band", "", ""},
		{"above lead range", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode([]byte(tt.input))
			if got != tt.want {
				t.Errorf("Encode(bytes of %q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Every byte value encodes alone to either itself (ASCII) or its band
// codepoint.
func TestEncode_EveryByte(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		got := Encode([]byte{b})
		var want string
		if b < 0x80 {
			want = string([]byte{b})
		} else {
			want = string(rune(0xEF80 + int(b) - 0x80))
		}
		if got != want {
			t.Errorf("Encode([%#x]) = %q, want %q", b, got, want)
		}
	}
}

func TestEncode_OutputAlwaysValidUTF8(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("plain"),
		[]byte{0xFF, 0xFE, 0x80, 0xEE, 0xBC, 0x80},
		[]byte(""),
		[]byte{0xEE, 0xBE}, // truncated band unit
		[]byte(strings.Repeat("", 10)),
		[]byte{0xF0, 0x90, 0x80}, // truncated 4-byte rune
	}
	for _, in := range inputs {
		if s := Encode(in); !utf8.ValidString(s) {
			t.Errorf("Encode(% x) = % x is not valid UTF-8", in, s)
		}
	}
}

func TestAppendEncode(t *testing.T) {
	dst := []byte("prefix:")
	dst = AppendEncode(dst, []byte("a\xFF"))
	if got, want := string(dst), "prefix:a"; got != want {
		t.Errorf("AppendEncode = %q, want %q", got, want)
	}
}
