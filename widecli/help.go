package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, arg string) (error, bool) {
	help(arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	pterm.Info.Println(helpTitle(topic))
	pterm.Println(helpText(topic))
}

func helpTopic(topic string) string {
	switch strings.ToLower(strings.TrimSpace(topic)) {
	case "mode", "modes", "strict", "lenient":
		return "modes"
	case "surrogate", "surrogates", "pair", "pairs":
		return "surrogates"
	}
	return "general"
}

func helpTitle(topic string) string {
	switch helpTopic(topic) {
	case "modes":
		return "Decoding Modes"
	case "surrogates":
		return "Surrogate Pairs"
	}
	return "Commands"
}

func helpText(topic string) string {
	switch helpTopic(topic) {
	case "modes":
		return `
	lenient  Continuation bytes are not checked. Their low six bits are
	         combined with the lead byte whatever the high bits are.
	strict   A sequence with a continuation byte not matching 10xxxxxx
	         is replaced by U+FFFD and decoding resumes after the lead byte.

	In both modes an invalid lead byte or a truncated sequence at the end
	of input yields U+FFFD and consumes a single byte.
	`
	case "surrogates":
		return `
	Scalar values above U+FFFF need two code units:
	+-----------------------------------+
	| c = v - 0x10000                   |
	| high = 0xD800 | (c >> 10)         |
	| low  = 0xDC00 | (c & 0x3FF)       |
	+-----------------------------------+
	Encoded surrogate code points (ED A0 80 ...) pass through as single units.
	`
	}
	return `
	Every input line is encoded to UTF-16 and displayed scalar by scalar.
	Start a line with '::' to encode text beginning with a colon.

	:null          append a terminating zero code unit
	:plain         do not append a terminating zero
	:strict        validate continuation bytes
	:lenient       do not validate continuation bytes
	:help [topic]  help on 'modes' or 'surrogates'
	:quit          leave the CLI
	`
}
