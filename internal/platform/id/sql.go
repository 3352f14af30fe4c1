package id

import (
	"database/sql/driver"
	"fmt"
)

// Value stores the canonical hex form.
func (i U64ID) Value() (driver.Value, error) {
	return i.Encode(), nil
}

// Scan reads text columns as hex and integer columns with the
// decimal-digits-as-hex rule, so legacy BIGINT columns still decode. SQL NULL
// is an error; scan into sql.Null[U64ID] for nullable columns.
func (i *U64ID) Scan(src any) error {
	var tok Token
	switch v := src.(type) {
	case string:
		tok = StringToken(v)
	case []byte:
		tok = StringToken(string(v))
	case int64:
		tok = SignedToken(v)
	case uint64:
		tok = UnsignedToken(v)
	case nil:
		return invalid(ShapeInvalid, "NULL")
	default:
		return invalid(ShapeInvalid, fmt.Sprintf("%T", src))
	}

	v, err := Decode(tok, true)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
