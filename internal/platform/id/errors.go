package id

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// ErrInvalidEncoding is matched by every decode failure in this package.
var ErrInvalidEncoding = crerr.New("invalid identifier encoding")

const expecting = "a hex-encoded integer between 0 and 2^64 - 1"

// InvalidEncodingError reports a token that could not be decoded into a U64ID.
// Token holds the literal that failed: the string itself for string tokens and
// the decimal literal for numeric tokens.
type InvalidEncodingError struct {
	Shape Shape
	Token string
}

func (e *InvalidEncodingError) Error() string {
	switch e.Shape {
	case ShapeString:
		return fmt.Sprintf("invalid value: string %q, expected %s", e.Token, expecting)
	case ShapeUnsigned, ShapeSigned:
		return fmt.Sprintf("invalid value: integer `%s`, expected %s", e.Token, expecting)
	default:
		return fmt.Sprintf("invalid type: %s, expected %s", e.Token, expecting)
	}
}

// Is makes errors.Is(err, ErrInvalidEncoding) hold for any InvalidEncodingError.
func (e *InvalidEncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

func invalid(shape Shape, token string) error {
	return &InvalidEncodingError{Shape: shape, Token: token}
}
