package widestr

import (
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEncode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "text.widestr")
	defer teardown()
	//
	tests := []struct {
		text string
		want []uint16
	}{
		{"hello", []uint16{'h', 'e', 'l', 'l', 'o'}},
		{"€", []uint16{0x20AC}},
		{"𐍈", []uint16{0xD800, 0xDF48}},
		{"", []uint16{}},
	}
	for _, tt := range tests {
		got := Encode(tt.text)
		if len(got) != len(tt.want) {
			t.Fatalf("Encode(%q) has length %d; want %d", tt.text, len(got), len(tt.want))
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Encode(%q)[%d] = %#04x; want %#04x", tt.text, i, got[i], tt.want[i])
			}
		}
		if n := Count(tt.text); n != len(tt.want) {
			t.Errorf("Count(%q) = %d; want %d", tt.text, n, len(tt.want))
		}
	}
}

func TestEncodeNull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "text.widestr")
	defer teardown()
	//
	got := EncodeNull("hi")
	if len(got) != 3 || got[0] != 'h' || got[1] != 'i' || got[2] != 0 {
		t.Errorf("EncodeNull(\"hi\") = %v; want [104 105 0]", got)
	}
	if got := EncodeNull(""); len(got) != 1 || got[0] != 0 {
		t.Errorf("EncodeNull(\"\") = %v; want [0]", got)
	}
	// same as encoding the text with an explicit NUL appended
	s := "Sample Window Name"
	want := utf16.Encode([]rune(s + "\x00"))
	got = EncodeNull(s)
	if len(got) != len(want) {
		t.Fatalf("EncodeNull(%q) has length %d; want %d", s, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EncodeNull(%q)[%d] = %d; want %d", s, i, got[i], want[i])
		}
	}
	if d := Decode(got); d != s {
		t.Errorf("Decode(EncodeNull(%q)) = %q", s, d)
	}
}

func TestCString(t *testing.T) {
	b := CString("glClear")
	if string(b) != "glClear\x00" {
		t.Errorf("CString(glClear) = %q", b)
	}
	if b := CString(""); len(b) != 1 || b[0] != 0 {
		t.Errorf("CString(\"\") = %v; want [0]", b)
	}
}
