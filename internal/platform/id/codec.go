package id

import (
	"strconv"
	"strings"
)

// Shape is the declared shape of an inbound token.
type Shape uint8

const (
	// ShapeInvalid marks tokens of a type no decoder accepts (null, bool,
	// float, object...).
	ShapeInvalid Shape = iota
	ShapeString
	ShapeUnsigned
	ShapeSigned
)

func (s Shape) String() string {
	switch s {
	case ShapeString:
		return "string"
	case ShapeUnsigned:
		return "unsigned"
	case ShapeSigned:
		return "signed"
	default:
		return "invalid"
	}
}

// Token is a decoded-but-uninterpreted input value. Exactly one of Str, Uint
// or Int is meaningful, selected by Shape.
type Token struct {
	Shape Shape
	Str   string
	Uint  uint64
	Int   int64
}

func StringToken(s string) Token   { return Token{Shape: ShapeString, Str: s} }
func UnsignedToken(v uint64) Token { return Token{Shape: ShapeUnsigned, Uint: v} }
func SignedToken(v int64) Token    { return Token{Shape: ShapeSigned, Int: v} }

// Literal renders the token the way it appeared in the input.
func (t Token) Literal() string {
	switch t.Shape {
	case ShapeString:
		return t.Str
	case ShapeUnsigned:
		return strconv.FormatUint(t.Uint, 10)
	case ShapeSigned:
		return strconv.FormatInt(t.Int, 10)
	default:
		return t.Str
	}
}

// Decode turns a token into a U64ID.
//
// Binary (non human-readable) formats only accept string tokens. Human-readable
// formats also accept integers, whose decimal rendering is reparsed as hex:
// UnsignedToken(12345) decodes to FromRaw(0x12345). Negative integers always
// fail because '-' is not a hex digit.
func Decode(tok Token, humanReadable bool) (U64ID, error) {
	if !humanReadable && tok.Shape != ShapeString {
		return Null, invalid(tok.Shape, tok.Literal())
	}

	switch tok.Shape {
	case ShapeString:
		return parseHex(tok.Shape, tok.Str)
	case ShapeUnsigned:
		return parseHex(tok.Shape, strconv.FormatUint(tok.Uint, 10))
	case ShapeSigned:
		return parseHex(tok.Shape, strconv.FormatInt(tok.Int, 10))
	default:
		return Null, invalid(ShapeInvalid, tok.Literal())
	}
}

// Parse decodes the canonical hex form.
func Parse(s string) (U64ID, error) {
	return Decode(StringToken(s), false)
}

// ParseDisplay accepts either the canonical hex form or the display form
// returned by String.
func ParseDisplay(s string) (U64ID, error) {
	hex, found := strings.CutPrefix(s, string(DisplayMarker))
	if !found {
		return Parse(s)
	}
	v, err := Parse(hex)
	if err != nil {
		return Null, invalid(ShapeString, s)
	}
	return v, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) U64ID {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parseHex(shape Shape, digits string) (U64ID, error) {
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return Null, invalid(shape, digits)
	}
	return U64ID(v), nil
}
