/*
Package wide encodes UTF-8 text as UTF-16 code units (“wide strings”), as
expected by native wide-string APIs.

Encoding is done in two passes over the input: Count determines the exact
number of 16-bit code units the output will need, then a second pass writes
the code units into a buffer of exactly that size. Both passes decode the
input with package utf8scan, so they always agree on the scalar values.
Buffers are allocated by the package itself; there is no way for a client to
hand in a buffer of unsuitable size.

Encoding never fails. Malformed UTF-8 is decoded to U+FFFD, one byte at a
time (see package utf8scan for the details). Scalar values up to 0xFFFF
produce one code unit, which is the value truncated to 16 bits. Larger
values produce a surrogate pair.

	units := wide.EncodeNullString("Sample Window Class")  // null-terminated

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package wide

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'text.widestr'
func tracer() tracing.Trace {
	return tracing.Select("text.widestr")
}
