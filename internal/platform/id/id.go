// Package id provides U64ID, the opaque 64-bit identifier used to name assets.
//
// # Null
//
// Every uint64 is a structurally valid U64ID. The zero value is reserved as
// Null and is never produced by Random, New or RandomGenerator.
//
// # Encoding
//
// The canonical external form is the lowercase hexadecimal payload without a
// prefix or padding, e.g. FromRaw(123454321) encodes as "75bc371". Every
// marshaler in this package emits that string, whatever the target format.
//
// Decoding is shape aware for human-readable formats (JSON, YAML, SQL): a
// string token is parsed as hex, and an integer token has its DECIMAL digits
// reparsed as hex, so the JSON number 12345 decodes to 0x12345. Previously
// serialized data depends on that rule.
// Binary formats only accept the string form.
package id

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// U64ID is an opaque asset identifier backed by a uint64.
type U64ID uint64

// Null is the reserved "no identifier" value.
const Null U64ID = 0

// DisplayMarker prefixes the display form returned by String.
const DisplayMarker = '*'

// FromRaw wraps v verbatim. No validation is performed, so FromRaw(0) is Null.
func FromRaw(v uint64) U64ID { return U64ID(v) }

// IsNull reports whether the identifier is the Null sentinel.
func (i U64ID) IsNull() bool { return i == Null }

// Raw returns the underlying integer.
func (i U64ID) Raw() uint64 { return uint64(i) }

// Compare returns -1, 0 or 1 ordering by the raw integer.
func (i U64ID) Compare(other U64ID) int { return cmp.Compare(i, other) }

// Less reports whether i orders before other.
func (i U64ID) Less(other U64ID) bool { return i < other }

// Hash returns a stable 64-bit hash of the payload. Equal identifiers always
// hash equally and the value does not change between processes.
func (i U64ID) Hash() uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(i))
	return xxhash.Sum64(b[:])
}

// String returns the display form: DisplayMarker followed by lowercase hex.
func (i U64ID) String() string {
	return string(i.appendDisplay(make([]byte, 0, 17)))
}

// LowerHex returns the payload as lowercase hex with no prefix.
func (i U64ID) LowerHex() string { return strconv.FormatUint(uint64(i), 16) }

// UpperHex returns the payload as uppercase hex with no prefix.
func (i U64ID) UpperHex() string { return strings.ToUpper(i.LowerHex()) }

// Encode returns the canonical external form, identical to LowerHex.
func (i U64ID) Encode() string { return i.LowerHex() }

// Format implements fmt.Formatter. %v and %s print the display form, %x and
// %X print hex like the underlying integer would (flags and width included),
// %d prints the decimal payload and %q the quoted display form.
func (i U64ID) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X', 'd', 'o', 'b':
		fmt.Fprintf(f, fmt.FormatString(f, verb), uint64(i))
	case 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), i.String())
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), i.String())
	default:
		fmt.Fprintf(f, "%%!%c(id.U64ID=%s)", verb, i.String())
	}
}

func (i U64ID) appendDisplay(b []byte) []byte {
	b = append(b, DisplayMarker)
	return strconv.AppendUint(b, uint64(i), 16)
}
