package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/widestr/utf8scan"
	"github.com/npillmayer/widestr/wide"
	"github.com/thatisuday/commando"
)

func runEncodeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	input, err := parseInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	order, serialize, err := parseByteOrder(flags["bytes"])
	if err != nil {
		fatalf("%v", err)
	}
	opts := encodeOptions(flags)
	var units wide.Units
	if mustFlagBool(flags["null"], "null") {
		units = wide.EncodeNullString(input, opts...)
	} else {
		units = wide.EncodeString(input, opts...)
	}
	tracer().Infof("encoded %d bytes into %d code units", len(input), len(units))
	if serialize {
		fmt.Println(formatBytes(units.Bytes(order)))
		return
	}
	fmt.Println(units.Hex())
}

func runCountCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	input, err := parseInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	opts := encodeOptions(flags)
	mode := utf8scan.Lenient
	if len(opts) > 0 {
		mode = utf8scan.Strict
	}
	fmt.Print(formatCount(input, wide.CountString(input, opts...), mode))
}

func formatCount(input string, units int, mode utf8scan.Mode) string {
	scalars, replaced := 0, 0
	for s := range utf8scan.Scalars(input, mode) {
		scalars++
		if s.IsReplacement() {
			replaced++
		}
	}
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Bytes:       %d\n", len(input)))
	sb.WriteString(fmt.Sprintf("Scalars:     %d\n", scalars))
	sb.WriteString(fmt.Sprintf("Code units:  %d\n", units))
	sb.WriteString(fmt.Sprintf("U+FFFD:      %d\n", replaced))
	return sb.String()
}

func runDecodeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	order, serialized, err := parseByteOrder(flags["bytes"])
	if err != nil {
		fatalf("%v", err)
	}
	spec := args["units"].Value
	var units wide.Units
	if serialized {
		b, err := parseHexBytes(spec)
		if err != nil {
			fatalf("%v", err)
		}
		if units, err = wide.DecodeBytes(b, order); err != nil {
			fatalf("%v", err)
		}
	} else if units, err = parseUnits(spec); err != nil {
		fatalf("%v", err)
	}
	tracer().Debugf("decoding %d code units", len(units))
	fmt.Println(units.String())
}
