package utf8scan

import "iter"

// Scalar is a Unicode scalar value as produced by the decoding arithmetic.
// For well-formed input it is the encoded code point. It is not range-checked.
type Scalar uint32

// Replacement is the Unicode replacement character U+FFFD.
const Replacement Scalar = 0xFFFD

// MaxBMP is the largest scalar value representable by a single UTF-16 code unit.
const MaxBMP Scalar = 0xFFFF

// UTF16Len returns the number of UTF-16 code units needed for s, either 1 or 2.
func (s Scalar) UTF16Len() int {
	if s <= MaxBMP {
		return 1
	}
	return 2
}

// IsReplacement reports whether s is U+FFFD.
func (s Scalar) IsReplacement() bool {
	return s == Replacement
}

// Text is either a string or a byte slice holding UTF-8 encoded text.
type Text interface {
	~string | ~[]byte
}

// Mode controls the treatment of bytes in continuation positions.
type Mode int

const (
	// Lenient extracts the low 6 bits of continuation bytes without checking them.
	Lenient Mode = iota
	// Strict requires continuation bytes to match 10xxxxxx and substitutes U+FFFD otherwise.
	Strict
)

func (m Mode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	}
	return "unknown"
}

// BreakOff removes one scalar value from the head of UTF-8 bytes, in mode Lenient.
// If b is empty, ok is false.
func BreakOff(b []byte) (s Scalar, rest []byte, ok bool) {
	return breakOff(Lenient, b)
}

// BreakOffString is like BreakOff, but operates on a string.
func BreakOffString(str string) (s Scalar, rest string, ok bool) {
	return breakOff(Lenient, str)
}

// BreakOff removes one scalar value from the head of UTF-8 bytes.
// If b is empty, ok is false and rest is b. Otherwise rest is strictly
// shorter than b.
func (m Mode) BreakOff(b []byte) (s Scalar, rest []byte, ok bool) {
	return breakOff(m, b)
}

// BreakOffString is like Mode.BreakOff, but operates on a string.
func (m Mode) BreakOffString(str string) (s Scalar, rest string, ok bool) {
	return breakOff(m, str)
}

// Next removes one scalar value from the head of text, decoded in mode m.
// It is the generic form of Mode.BreakOff and Mode.BreakOffString.
func Next[T Text](m Mode, text T) (s Scalar, rest T, ok bool) {
	return breakOff(m, text)
}

// Scalars iterates over the scalar values of text, decoded in mode m.
func Scalars[T Text](text T, m Mode) iter.Seq[Scalar] {
	return func(yield func(Scalar) bool) {
		for {
			s, rest, ok := breakOff(m, text)
			if !ok || !yield(s) {
				return
			}
			text = rest
		}
	}
}

func breakOff[T Text](m Mode, b T) (Scalar, T, bool) {
	if len(b) == 0 {
		return 0, b, false
	}
	lead := b[0]
	switch {
	case lead&0x80 == 0x00: // 0xxxxxxx
		return Scalar(lead), b[1:], true
	case lead&0xE0 == 0xC0 && len(b) >= 2: // 110xxxxx
		if m == Strict && !isTrail(b[1]) {
			break
		}
		s := Scalar(lead&0x1F)<<6 | Scalar(b[1]&0x3F)
		return s, b[2:], true
	case lead&0xF0 == 0xE0 && len(b) >= 3: // 1110xxxx
		if m == Strict && !(isTrail(b[1]) && isTrail(b[2])) {
			break
		}
		s := Scalar(lead&0x0F)<<12 | Scalar(b[1]&0x3F)<<6 | Scalar(b[2]&0x3F)
		return s, b[3:], true
	case lead&0xF8 == 0xF0 && len(b) >= 4: // 11110xxx
		if m == Strict && !(isTrail(b[1]) && isTrail(b[2]) && isTrail(b[3])) {
			break
		}
		s := Scalar(lead&0x07)<<18 | Scalar(b[1]&0x3F)<<12 | Scalar(b[2]&0x3F)<<6 | Scalar(b[3]&0x3F)
		return s, b[4:], true
	}
	return Replacement, b[1:], true
}

func isTrail(b byte) bool {
	return b&0xC0 == 0x80
}
