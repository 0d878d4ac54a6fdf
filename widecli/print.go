package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/widestr/utf8scan"
	"github.com/npillmayer/widestr/wide"
	"github.com/pterm/pterm"
)

// scalarTable breaks text into scalar values and lists, for each of them, the
// UTF-8 bytes consumed and the UTF-16 code units produced.
func scalarTable(text string, mode utf8scan.Mode) pterm.TableData {
	data := pterm.TableData{
		{"#", "Scalar", "UTF-8", "UTF-16", "Note"},
	}
	i := 0
	for {
		s, rest, ok := mode.BreakOffString(text)
		if !ok {
			break
		}
		consumed := text[:len(text)-len(rest)]
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("U+%04X", uint32(s)),
			formatUTF8(consumed),
			formatUnits(consumed, mode),
			noteFor(s, consumed),
		})
		text = rest
		i++
	}
	return data
}

func formatUTF8(b string) string {
	parts := make([]string, len(b))
	for i := 0; i < len(b); i++ {
		parts[i] = fmt.Sprintf("%02X", b[i])
	}
	return strings.Join(parts, " ")
}

// formatUnits encodes a single scalar's UTF-8 bytes, as consumed by the scanner.
func formatUnits(consumed string, mode utf8scan.Mode) string {
	units := wide.EncodeString(consumed, optionsFor(mode)...)
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%04X", u)
	}
	return strings.Join(parts, " ")
}

func optionsFor(mode utf8scan.Mode) []wide.Option {
	if mode == utf8scan.Strict {
		return []wide.Option{wide.ValidateTrailing}
	}
	return nil
}

func noteFor(s utf8scan.Scalar, consumed string) string {
	switch {
	case s.IsReplacement() && consumed != "\xEF\xBF\xBD":
		return "malformed"
	case s >= 0xD800 && s <= 0xDFFF:
		return "surrogate code point"
	case s > 0x10FFFF:
		return "out of range"
	case s > utf8scan.MaxBMP:
		return "surrogate pair"
	}
	return ""
}
