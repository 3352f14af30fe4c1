package asset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/assetid/internal/platform/id"
)

const (
	MaxNameLength = 200
	MaxKindLength = 64
)

var (
	ErrNullID        = errors.New("asset id must not be null")
	ErrAlreadyExists = errors.New("asset already exists")
)

// Asset is a named entity identified by a random U64ID.
type Asset struct {
	ID        id.U64ID
	Name      string
	Kind      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Asset) Validate() error {
	if a.ID.IsNull() {
		return ErrNullID
	}
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return fmt.Errorf("asset name is required")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("asset name exceeds %d characters", MaxNameLength)
	}
	kind := strings.TrimSpace(a.Kind)
	if kind == "" {
		return fmt.Errorf("asset kind is required")
	}
	if len(kind) > MaxKindLength {
		return fmt.Errorf("asset kind exceeds %d characters", MaxKindLength)
	}

	return nil
}
