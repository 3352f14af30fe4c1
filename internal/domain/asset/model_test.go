package asset

import (
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

func TestAssetValidate(t *testing.T) {
	valid := Asset{ID: id.FromRaw(0xa12b345), Name: "hero.png", Kind: "texture"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid asset, got %v", err)
	}

	nullID := valid
	nullID.ID = id.Null
	if err := nullID.Validate(); !errors.Is(err, ErrNullID) {
		t.Fatalf("expected ErrNullID, got %v", err)
	}

	cases := map[string]Asset{
		"empty name": {ID: valid.ID, Name: "  ", Kind: "texture"},
		"long name":  {ID: valid.ID, Name: strings.Repeat("n", MaxNameLength+1), Kind: "texture"},
		"empty kind": {ID: valid.ID, Name: "hero.png"},
		"long kind":  {ID: valid.ID, Name: "hero.png", Kind: strings.Repeat("k", MaxKindLength+1)},
	}
	for name, item := range cases {
		if err := item.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
