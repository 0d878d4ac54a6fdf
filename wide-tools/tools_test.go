package main

import (
	"testing"

	"github.com/npillmayer/widestr/utf8scan"
	"github.com/npillmayer/widestr/wide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestParseCodepoints(t *testing.T) {
	runes, err := parseCodepoints("U+0068, u+0069 0x10348")
	require.NoError(t, err)
	assert.Equal(t, []rune{'h', 'i', 0x10348}, runes)
	//
	_, err = parseCodepoints("U+ZZZZ")
	assert.Error(t, err)
	_, err = parseCodepoints("U+110000")
	assert.Error(t, err)
	_, err = parseCodepointToken(" ")
	assert.Error(t, err)
}

func TestParseUnits(t *testing.T) {
	units, err := parseUnits("0x0068,0x0069 D800 0xDF48")
	require.NoError(t, err)
	assert.Equal(t, wide.Units{'h', 'i', 0xD800, 0xDF48}, units)
	assert.Equal(t, "hi𐍈", units.String())
	//
	_, err = parseUnits("0x10000")
	assert.Error(t, err, "code units are limited to 16 bits")
}

func TestParseHexBytes(t *testing.T) {
	b, err := parseHexBytes("68 00,6900")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x68, 0x00, 0x69, 0x00}, b)
	_, err = parseHexBytes("680")
	assert.Error(t, err)
	_, err = parseHexBytes("6G")
	assert.Error(t, err)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "68 00 69 00", formatBytes(wide.EncodeString("hi").Bytes(unicode.LittleEndian)))
	assert.Equal(t, "", formatBytes(nil))
}

func TestFormatCount(t *testing.T) {
	out := formatCount("a𐍈\xFF", wide.CountString("a𐍈\xFF"), utf8scan.Lenient)
	assert.Contains(t, out, "Bytes:       6\n")
	assert.Contains(t, out, "Scalars:     3\n")
	assert.Contains(t, out, "Code units:  4\n")
	assert.Contains(t, out, "U+FFFD:      1\n")
}
