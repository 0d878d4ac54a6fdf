package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/widestr/wide"
	"github.com/thatisuday/commando"
	"golang.org/x/text/encoding/unicode"
)

func main() {
	commando.
		SetExecutableName("wide-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for encoding text as UTF-16 wide strings and generating wide-string literals.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("encode").
		SetDescription("Encode text as UTF-16 code units and print them in hex.").
		SetShortDescription("encode text").
		AddArgument("text...", "text to encode (variadic argument parts joined by comma by commando)", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0068,U+10348)", commando.String, "-").
		AddFlag("null,n", "append a terminating zero code unit", commando.Bool, nil).
		AddFlag("strict,s", "replace sequences with malformed continuation bytes by U+FFFD", commando.Bool, nil).
		AddFlag("bytes,b", "print serialized bytes in byte order le|be instead of code units", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runEncodeCommand)

	commando.
		Register("count").
		SetDescription("Print the number of UTF-16 code units needed to encode text.").
		SetShortDescription("count code units").
		AddArgument("text...", "text to measure (variadic argument parts joined by comma by commando)", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0068,U+10348)", commando.String, "-").
		AddFlag("strict,s", "replace sequences with malformed continuation bytes by U+FFFD", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runCountCommand)

	commando.
		Register("decode").
		SetDescription("Decode UTF-16 code units (or serialized bytes) back to text.").
		SetShortDescription("decode code units").
		AddArgument("units...", "hex code units, e.g. 0x0068,0x0069 (hex bytes with --bytes)", "").
		AddFlag("bytes,b", "input is serialized bytes in byte order le|be", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runDecodeCommand)

	commando.
		Register("gen").
		SetDescription("Generate [N]uint16 declarations for string constants marked with //wide:encode or //wide:null.").
		SetShortDescription("generate wide-string literals").
		AddArgument("file", "Go source file", "").
		AddFlag("output,o", "output file (default: <file>_wide.go)", commando.String, "-").
		AddFlag("strict,s", "replace sequences with malformed continuation bytes by U+FFFD", commando.Bool, nil).
		AddFlag("verify", "check that the output file is up to date instead of writing it", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runGenCommand)

	commando.Parse(nil)
}

// tracer traces with key 'text.widestr'
func tracer() tracing.Trace {
	return tracing.Select("text.widestr")
}

// setupTracing routes tracing to the Go logger. Trace output is restricted to
// errors unless flag verbose is set.
func setupTracing(flags map[string]commando.FlagValue) {
	level := "Error"
	if v, ok := flags["verbose"]; ok && mustFlagBool(v, "verbose") {
		level = "Debug"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.text.widestr": level,
		"trace.text.widegen": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// --- Flag and argument parsing ---------------------------------------------

func parseInput(textArg commando.ArgValue, cpFlag commando.FlagValue) (string, error) {
	cp, err := cpFlag.GetString()
	if err != nil {
		return "", fmt.Errorf("invalid --codepoints flag: %w", err)
	}
	cp = strings.TrimSpace(cp)
	if cp == "-" {
		cp = ""
	}
	if cp != "" {
		runes, err := parseCodepoints(cp)
		if err != nil {
			return "", err
		}
		return string(runes), nil
	}
	return textArg.Value, nil
}

func parseCodepoints(spec string) ([]rune, error) {
	parts := splitCSVSpace(spec)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepointToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	u, err := parseHex(token, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("codepoint %q out of range", token)
	}
	return rune(u), nil
}

// parseUnits reads a list of hex code units, e.g. "0x0068,0x0069" or "U+0068 U+0069".
func parseUnits(spec string) (wide.Units, error) {
	parts := splitCSVSpace(spec)
	out := make(wide.Units, 0, len(parts))
	for _, p := range parts {
		u, err := parseHex(p, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid code unit %q: %w", p, err)
		}
		out = append(out, uint16(u))
	}
	return out, nil
}

// parseHexBytes reads serialized bytes, given as hex pairs with optional
// separators, e.g. "68 00 69 00" or "68006900".
func parseHexBytes(spec string) ([]byte, error) {
	digits := strings.Join(splitCSVSpace(spec), "")
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits in %q", spec)
	}
	b := make([]byte, len(digits)/2)
	for i := range b {
		n, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte %q: %w", digits[2*i:2*i+2], err)
		}
		b[i] = byte(n)
	}
	return b, nil
}

func parseHex(token string, bitSize int) (uint64, error) {
	hex := strings.TrimSpace(token)
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	return strconv.ParseUint(hex, 16, bitSize)
}

func parseByteOrder(flag commando.FlagValue) (order unicode.Endianness, ok bool, err error) {
	s, err := flag.GetString()
	if err != nil {
		return unicode.LittleEndian, false, fmt.Errorf("invalid --bytes flag: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "-":
		return unicode.LittleEndian, false, nil
	case "le", "little", "utf-16le":
		return unicode.LittleEndian, true, nil
	case "be", "big", "utf-16be":
		return unicode.BigEndian, true, nil
	default:
		return unicode.LittleEndian, false, fmt.Errorf("unsupported byte order %q (expected le|be)", s)
	}
}

func encodeOptions(flags map[string]commando.FlagValue) []wide.Option {
	if mustFlagBool(flags["strict"], "strict") {
		return []wide.Option{wide.ValidateTrailing}
	}
	return nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func formatBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(parts, " ")
}

// ---------------------------------------------------------------------------

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return strings.TrimSpace(s)
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "wide-tools: "+format+"\n", args...)
	os.Exit(1)
}
