package id

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits the canonical hex form as a string scalar. The encoder
// quotes it whenever it would otherwise resolve to a number.
func (i U64ID) MarshalYAML() (any, error) {
	return i.Encode(), nil
}

// UnmarshalYAML accepts !!str scalars as hex and !!int scalars with the same
// decimal-digits-as-hex rule as JSON integers.
//
// yaml.v3 never calls it for a null node (~, null or an empty value): a
// U64ID field is left untouched and a *U64ID field is set to nil. Fields that
// may be absent or null should be declared as *U64ID, as with JSON.
func (i *U64ID) UnmarshalYAML(node *yaml.Node) error {
	tok, err := yamlToken(node)
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

func yamlToken(node *yaml.Node) (Token, error) {
	if node.Kind != yaml.ScalarNode {
		return Token{}, invalid(ShapeInvalid, node.ShortTag())
	}

	switch node.ShortTag() {
	case "!!str":
		return StringToken(node.Value), nil
	case "!!int":
		if strings.HasPrefix(node.Value, "-") {
			var n int64
			if err := node.Decode(&n); err != nil {
				return Token{}, invalid(ShapeSigned, node.Value)
			}
			return SignedToken(n), nil
		}
		var n uint64
		if err := node.Decode(&n); err != nil {
			return Token{}, invalid(ShapeUnsigned, node.Value)
		}
		return UnsignedToken(n), nil
	default:
		return Token{}, invalid(ShapeInvalid, node.Value)
	}
}
