package id

import (
	"bytes"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// MarshalJSON emits the canonical hex form as a JSON string.
func (i U64ID) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 18)
	b = append(b, '"')
	b = strconv.AppendUint(b, uint64(i), 16)
	return append(b, '"'), nil
}

// UnmarshalJSON accepts a JSON string (hex) or a JSON integer whose decimal
// digits are reparsed as hex. JSON null is rejected; use *U64ID for optional
// fields.
func (i *U64ID) UnmarshalJSON(data []byte) error {
	tok, err := JSONToken(data)
	if err != nil {
		return err
	}
	v, err := Decode(tok, true)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// AppendText implements encoding.TextAppender.
func (i U64ID) AppendText(b []byte) ([]byte, error) {
	return strconv.AppendUint(b, uint64(i), 16), nil
}

// MarshalText emits the canonical hex form. JSON map keys, flags and env
// decoders go through this path.
func (i U64ID) MarshalText() ([]byte, error) {
	return i.AppendText(make([]byte, 0, 16))
}

// UnmarshalText parses the canonical hex form only.
func (i *U64ID) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalBinary emits the canonical hex form. Binary formats carry no shape
// information, so the identifier still travels as a string.
func (i U64ID) MarshalBinary() ([]byte, error) {
	return i.MarshalText()
}

// UnmarshalBinary accepts the canonical hex form only.
func (i *U64ID) UnmarshalBinary(data []byte) error {
	v, err := Decode(StringToken(string(data)), false)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// JSONToken classifies a raw JSON value into a Token without decoding it.
// Strings, integers and negative integers map to their shapes; anything
// else fails with an InvalidEncodingError of ShapeInvalid.
func JSONToken(data []byte) (Token, error) {
	lit := string(bytes.TrimSpace(data))
	if lit == "" {
		return Token{}, invalid(ShapeInvalid, "empty input")
	}

	switch c := lit[0]; {
	case c == '"':
		var s string
		if err := sonic.UnmarshalString(lit, &s); err != nil {
			return Token{}, invalid(ShapeInvalid, lit)
		}
		return StringToken(s), nil
	case c == '-' || ('0' <= c && c <= '9'):
		return jsonNumberToken(lit)
	default:
		return Token{}, invalid(ShapeInvalid, lit)
	}
}

func jsonNumberToken(lit string) (Token, error) {
	if strings.ContainsAny(lit, ".eE") {
		return Token{}, invalid(ShapeInvalid, lit)
	}
	if lit[0] == '-' {
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return Token{}, invalid(ShapeSigned, lit)
		}
		return SignedToken(n), nil
	}
	n, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		return Token{}, invalid(ShapeUnsigned, lit)
	}
	return UnsignedToken(n), nil
}
