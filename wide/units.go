package wide

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Units is a sequence of UTF-16 code units.
type Units []uint16

// ErrOddLength is returned when decoding serialized UTF-16 of odd byte length.
var ErrOddLength = errors.New("wide: UTF-16 byte sequence has odd length")

// TrimNull returns u without a trailing zero code unit, if present.
func (u Units) TrimNull() Units {
	if len(u) > 0 && u[len(u)-1] == 0 {
		return u[:len(u)-1]
	}
	return u
}

// String decodes u back to UTF-8. Decoding stops at the first zero code unit,
// as is common for buffers filled in by native APIs. Unpaired surrogates are
// decoded as U+FFFD.
func (u Units) String() string {
	for i, c := range u {
		if c == 0 {
			u = u[:i]
			break
		}
	}
	if len(u) == 0 {
		return ""
	}
	s, err := decodeUTF16(u.Bytes(unicode.BigEndian), unicode.BigEndian)
	if err != nil {
		tracer().Errorf(err.Error())
		return ""
	}
	return s
}

// Bytes serializes u in byte order `order`, two bytes per code unit.
func (u Units) Bytes(order unicode.Endianness) []byte {
	b := make([]byte, 2*len(u))
	for i, c := range u {
		putU16(b[2*i:], c, order)
	}
	return b
}

// Hex formats u as a list of hexadecimal code units, e.g. "[0x0068 0x0069]".
func (u Units) Hex() string {
	sb := strings.Builder{}
	sb.WriteByte('[')
	for i, c := range u {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("0x%04X", c))
	}
	sb.WriteByte(']')
	return sb.String()
}

// DecodeBytes reads serialized UTF-16 code units in byte order `order`.
// A byte order mark is not interpreted.
func DecodeBytes(b []byte, order unicode.Endianness) (Units, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddLength, len(b))
	}
	u := make(Units, len(b)/2)
	for i := range u {
		u[i] = u16(b[2*i:], order)
	}
	return u, nil
}

// --- Byte order helpers ----------------------------------------------------

func u16(b []byte, order unicode.Endianness) uint16 {
	_ = b[1] // Bounds check hint to compiler
	if order == unicode.LittleEndian {
		return uint16(b[1])<<8 | uint16(b[0])
	}
	return uint16(b[0])<<8 | uint16(b[1])
}

func putU16(b []byte, c uint16, order unicode.Endianness) {
	_ = b[1] // Bounds check hint to compiler
	if order == unicode.LittleEndian {
		b[0], b[1] = byte(c), byte(c>>8)
		return
	}
	b[0], b[1] = byte(c>>8), byte(c)
}

func decodeUTF16(str []byte, order unicode.Endianness) (string, error) {
	enc := unicode.UTF16(order, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}
