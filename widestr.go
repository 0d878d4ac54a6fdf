package widestr

import (
	"github.com/npillmayer/widestr/wide"
)

// Encode returns the UTF-16 code units for text, without terminator.
//
// Malformed UTF-8 is replaced by U+FFFD, one byte at a time. Encode never
// fails; for empty text it returns an empty (non-nil) slice.
func Encode(text string) []uint16 {
	return wide.EncodeString(text)
}

// EncodeNull returns the UTF-16 code units for text, followed by a zero unit.
// This is the shape expected by native APIs taking a pointer to a wide string,
// e.g. class and window names:
//
//	className := widestr.EncodeNull("Sample Window Class")
//	wc.lpszClassName = &className[0]
func EncodeNull(text string) []uint16 {
	return wide.EncodeNullString(text)
}

// Count returns the number of UTF-16 code units Encode(text) will produce.
func Count(text string) int {
	return wide.CountString(text)
}

// CString returns text as null-terminated bytes, for native APIs taking
// narrow (byte) strings, such as function-name lookups in shared libraries.
//
// CString does not check for zero bytes inside text; a native API will see
// the text cut off at the first one.
func CString(text string) []byte {
	b := make([]byte, len(text)+1)
	copy(b, text)
	if len(text) > 0 {
		tracer().Debugf("C string of %d bytes", len(b))
	}
	return b
}

// Decode returns the text held in a buffer of UTF-16 code units, up to the
// first zero unit. Unpaired surrogates are decoded as U+FFFD.
// This is the inverse of EncodeNull for well-formed text, and is useful for
// reading buffers filled in by native APIs, such as error messages.
func Decode(units []uint16) string {
	return wide.Units(units).String()
}
