package wide

import "github.com/npillmayer/widestr/utf8scan"

const (
	// 0xd800-0xdc00 encodes the high 10 bits of a pair.
	// 0xdc00-0xe000 encodes the low 10 bits of a pair.
	// the value is those 20 bits plus 0x10000.
	surr1    = 0xd800
	surr2    = 0xdc00
	surrSelf = 0x10000
)

// Option influences the decoding of UTF-8 input.
type Option int

const (
	// ValidateTrailing requires continuation bytes to match 10xxxxxx.
	// Sequences with malformed continuation bytes are replaced by U+FFFD
	// instead of being decoded to whatever the bits add up to.
	ValidateTrailing Option = iota
)

func modeOf(opts []Option) utf8scan.Mode {
	for _, o := range opts {
		if o == ValidateTrailing {
			return utf8scan.Strict
		}
	}
	return utf8scan.Lenient
}

// --- Counting --------------------------------------------------------------

// Count returns the number of UTF-16 code units needed to encode b.
//
// This is not the number of code points: code points above 0xFFFF need two
// code units.
func Count(b []byte, opts ...Option) int {
	return count(b, modeOf(opts))
}

// CountString is like Count, but operates on a string.
func CountString(s string, opts ...Option) int {
	return count(s, modeOf(opts))
}

func count[T utf8scan.Text](text T, m utf8scan.Mode) int {
	n := 0
	for {
		s, rest, ok := utf8scan.Next(m, text)
		if !ok {
			return n
		}
		n += s.UTF16Len()
		text = rest
	}
}

// --- Encoding --------------------------------------------------------------

// Encode returns the UTF-16 encoding of b. The result has exactly
// Count(b) code units.
func Encode(b []byte, opts ...Option) Units {
	return encode(b, false, modeOf(opts))
}

// EncodeString is like Encode, but operates on a string.
func EncodeString(s string, opts ...Option) Units {
	return encode(s, false, modeOf(opts))
}

// EncodeNull returns the UTF-16 encoding of b with a trailing zero code unit.
// The result has exactly Count(b)+1 code units.
func EncodeNull(b []byte, opts ...Option) Units {
	return encode(b, true, modeOf(opts))
}

// EncodeNullString is like EncodeNull, but operates on a string.
func EncodeNullString(s string, opts ...Option) Units {
	return encode(s, true, modeOf(opts))
}

func encode[T utf8scan.Text](text T, null bool, m utf8scan.Mode) Units {
	n := count(text, m)
	size := n
	if null {
		size++
	}
	units := make(Units, size)
	written, replaced := transcode(units[:n], text, m)
	if replaced > 0 {
		tracer().Debugf("wide: %d malformed byte(s) replaced by U+FFFD in %d bytes of input",
			replaced, len(text))
	}
	tracer().Debugf("wide: encoded %d bytes into %d code units (null=%v, mode=%s)",
		len(text), written, null, m)
	return units
}

// transcode writes the code units for text into dst. dst must have been sized
// by count on the same text and mode. It returns the number of units written
// and the number of replacement characters substituted for malformed input.
func transcode[T utf8scan.Text](dst Units, text T, m utf8scan.Mode) (n int, replaced int) {
	for {
		s, rest, ok := utf8scan.Next(m, text)
		if !ok {
			return
		}
		if s.IsReplacement() && !startsWithReplacement(text) {
			replaced++
		}
		if s <= utf8scan.MaxBMP {
			dst[n] = uint16(s)
			n++
		} else {
			c := s - surrSelf
			_ = dst[n+1] // Bounds check hint to compiler
			dst[n] = uint16(surr1 | (c >> 10))
			dst[n+1] = uint16(surr2 | (c & 0x3FF))
			n += 2
		}
		text = rest
	}
}

// startsWithReplacement reports whether text begins with a well-formed
// encoding of U+FFFD (EF BF BD), which is not a substitution.
func startsWithReplacement[T utf8scan.Text](text T) bool {
	return len(text) >= 3 && text[0] == 0xEF && text[1] == 0xBF && text[2] == 0xBD
}
