package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	ProviderID ID
	RunID      ID
	ScenarioID ID
)

// String conversions for domain IDs
func (id ProviderID) String() string { return ID(id).String() }
func (id RunID) String() string      { return ID(id).String() }
func (id ScenarioID) String() string { return ID(id).String() }

// IsEmpty checks if the provider ID is empty
func (id ProviderID) IsEmpty() bool { return id == "" }

// ParseProviderID parses a string into ProviderID
func ParseProviderID(s string) (ProviderID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("provider ID cannot be empty")
	}
	return ProviderID(s), nil
}
