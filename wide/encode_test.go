package wide

import (
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widestr/utf8scan"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type EncodeTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestEncodeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "text.widestr")
	defer teardown()
	suite.Run(t, new(EncodeTestEnviron))
}

// run once, before test suite methods
func (env *EncodeTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("text.widestr").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *EncodeTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

const words8 = "$¢ह€한𐍈, 漢字, ひらがな / 平仮名, カタカナ / 片仮名"

// --- Tests -----------------------------------------------------------------

func (env *EncodeTestEnviron) TestHello() {
	units := EncodeString("hello")
	env.Equal(Units{'h', 'e', 'l', 'l', 'o'}, units)
	env.Equal(utf16.Encode([]rune("hello")), []uint16(units))
}

func (env *EncodeTestEnviron) TestEuro() {
	env.Equal(Units{0x20AC}, EncodeString("€"))
}

func (env *EncodeTestEnviron) TestSurrogatePair() {
	units := EncodeString("𐍈")
	env.Equal(Units{0xD800, 0xDF48}, units)
}

func (env *EncodeTestEnviron) TestEmpty() {
	units := EncodeString("")
	env.NotNil(units)
	env.Len(units, 0)
	env.Equal(Units{0}, EncodeNullString(""))
	env.Equal(0, CountString(""))
}

func (env *EncodeTestEnviron) TestTerminator() {
	env.Equal(Units{'h', 'i', 0}, EncodeNullString("hi"))
	for _, s := range []string{"", "hi", words8, "\xF0\x90", "a\x00b"} {
		plain := EncodeString(s)
		null := EncodeNullString(s)
		env.Equal(append(plain, 0), null, "terminated encoding of %q", s)
		env.Equal(Encode([]byte(s)), plain)
		env.Equal(EncodeNull([]byte(s)), null)
	}
}

func (env *EncodeTestEnviron) TestMatchesStandardLibrary() {
	for _, s := range []string{"hello from the unit test", words8, "Sample Window Class", "🎉 party 🎉"} {
		want := utf16.Encode([]rune(s))
		env.Equal(len(want), CountString(s), "count for %q", s)
		env.Equal(len(want), Count([]byte(s)), "count for %q", s)
		env.Equal(want, []uint16(EncodeString(s)), "units for %q", s)
	}
}

func (env *EncodeTestEnviron) TestCountIsIdempotent() {
	b := []byte(words8 + "\xC3")
	first := Count(b)
	env.Equal(first, Count(b))
	env.Equal(words8+"\xC3", string(b), "counting must not alter its input")
}

func (env *EncodeTestEnviron) TestSizeInvariant() {
	inputs := []string{"", "x", words8, "\xFF\xFE", "\xE2\x82", "\xF0\x90\x8D\x48\xED\xA0\x80", "\xC3\x28"}
	for _, s := range inputs {
		for _, opts := range [][]Option{nil, {ValidateTrailing}} {
			env.Len(EncodeString(s, opts...), CountString(s, opts...), "input %q", s)
			env.Len(EncodeNullString(s, opts...), CountString(s, opts...)+1, "input %q", s)
		}
	}
}

func (env *EncodeTestEnviron) TestMalformedInput() {
	// truncated 4-byte sequence: every byte is replaced separately
	env.Equal(Units{'a', 0xFFFD, 0xFFFD, 0xFFFD}, EncodeString("a\xF0\x90\x8D"))
	env.Equal(Units{0xFFFD}, EncodeString("\x80"))
}

func (env *EncodeTestEnviron) TestValidateTrailing() {
	in := "\xC3\x28" // invalid second byte
	env.Equal(Units{0x03<<6 | 0x28}, EncodeString(in), "lenient decoding keeps the arithmetic's result")
	env.Equal(Units{0xFFFD, 0x28}, EncodeString(in, ValidateTrailing))
	env.Equal(Units{0xFFFD, 0x28, 0}, EncodeNull([]byte(in), ValidateTrailing))
	env.Equal(2, CountString(in, ValidateTrailing))
}

// --- Exhaustive checks (no tracing) ------------------------------------------

// utf8Bytes encodes v with the plain UTF-8 arithmetic, including surrogate
// code points, which package utf8 would refuse to encode.
func utf8Bytes(v uint32) []byte {
	switch {
	case v < 0x80:
		return []byte{byte(v)}
	case v < 0x800:
		return []byte{0xC0 | byte(v>>6), 0x80 | byte(v&0x3F)}
	case v < 0x10000:
		return []byte{0xE0 | byte(v>>12), 0x80 | byte(v>>6&0x3F), 0x80 | byte(v&0x3F)}
	}
	return []byte{0xF0 | byte(v>>18), 0x80 | byte(v>>12&0x3F), 0x80 | byte(v>>6&0x3F), 0x80 | byte(v&0x3F)}
}

func TestSingleUnitScalars(t *testing.T) {
	dst := make(Units, 1)
	for v := uint32(0); v <= 0xFFFF; v++ {
		b := utf8Bytes(v)
		if n := count(b, utf8scan.Lenient); n != 1 {
			t.Fatalf("count(%U) = %d; want 1", v, n)
		}
		n, _ := transcode(dst, b, utf8scan.Lenient)
		if n != 1 || dst[0] != uint16(v) {
			t.Fatalf("transcode(%U) = %v (n=%d); want [%#04x]", v, dst, n, v)
		}
	}
}

func TestSurrogatePairScalars(t *testing.T) {
	dst := make(Units, 2)
	for v := uint32(0x10000); v <= 0x10FFFF; v++ {
		b := utf8Bytes(v)
		if n := count(b, utf8scan.Strict); n != 2 {
			t.Fatalf("count(%U) = %d; want 2", v, n)
		}
		transcode(dst, b, utf8scan.Strict)
		c := v - 0x10000
		hi, lo := uint16(0xD800|(c>>10)), uint16(0xDC00|(c&0x3FF))
		if dst[0] != hi || dst[1] != lo {
			t.Fatalf("transcode(%U) = %v; want [%#04x %#04x]", v, dst, hi, lo)
		}
		if r1, r2 := utf16.EncodeRune(rune(v)); uint16(r1) != hi || uint16(r2) != lo {
			t.Fatalf("transcode(%U) disagrees with package utf16", v)
		}
	}
}

func TestReplacementCounting(t *testing.T) {
	dst := make(Units, 8)
	_, replaced := transcode(dst, "�\xFFa\x80", utf8scan.Lenient)
	if replaced != 2 {
		t.Errorf("expected 2 substitutions, counted %d", replaced)
	}
}
