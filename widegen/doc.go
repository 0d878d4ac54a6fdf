/*
Package widegen generates UTF-16 array declarations for Go string constants.

Go cannot run code at compile time, so encoding a text literal to a
wide string happens either at run time (package wide) or ahead of time, by
generating source code. Package widegen does the latter. Constants are
selected by a directive comment:

	//wide:null
	const ClassName = "Sample Window Class"

	const Title = "Fenster " + ClassName //wide:encode TitleUTF16

generates

	// ClassNameW holds the UTF-16 encoding of ClassName, null-terminated.
	var ClassNameW = [20]uint16{0x0053, 0x0061, …, 0x0000}

	// TitleUTF16 holds the UTF-16 encoding of Title.
	var TitleUTF16 = [27]uint16{…}

Directive `wide:encode` emits the plain encoding, `wide:null` adds a
terminating zero unit. An optional argument names the variable; it defaults
to the constant's name with suffix “W”. Constant values may be string
literals, references to other constants of the same file, and
concatenations thereof.

The usual way to run the generator is a `go:generate` line calling the
`gen` command of wide-tools.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package widegen

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'text.widegen'
func tracer() tracing.Trace {
	return tracing.Select("text.widegen")
}
