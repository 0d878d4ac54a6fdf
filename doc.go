/*
Package widestr turns UTF-8 text into UTF-16 “wide strings”.

Native wide-string APIs (Win32 `…W` functions being the prominent example)
expect text as a buffer of 16-bit code units, often terminated by a zero
unit. Go strings are UTF-8 byte sequences. This module bridges the two with
a small, allocation-exact transcoder:

▪︎ package utf8scan breaks Unicode scalar values off UTF-8 input, one at a time,
never failing on malformed input.

▪︎ package wide counts the UTF-16 code units needed for a piece of text, then
encodes it into a buffer of exactly that size, with or without terminator.

▪︎ package widegen generates Go source declaring `[N]uint16` arrays for string
constants, which is the closest Go gets to encoding text literals at
compile time.

This package offers the most common calls on strings; clients needing
options (e.g., validation of continuation bytes) use package wide directly.

There is a certain confusion about what “length” means for text. We will
stick to the following definitions:

▪︎ A "scalar value" is a single Unicode code point, e.g. U+20AC for '€'.

▪︎ A "code unit" is one storage slot of an encoding: a byte for UTF-8, a
uint16 for UTF-16. Code points above U+FFFF need two UTF-16 code units,
called a "surrogate pair".

# Status

Full Unicode conformance is not a goal: there is no normalization, no
grapheme handling, and continuation bytes are not validated unless asked for.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package widestr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'text.widestr'
func tracer() tracing.Trace {
	return tracing.Select("text.widestr")
}
