// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// DecisionID uniquely identifies one authorization decision.
// Consumers correlate decisions across logs and batch results by this ID.
type DecisionID struct {
	value uuid.UUID
}

// NewDecisionID creates a new random decision ID
func NewDecisionID() DecisionID {
	return DecisionID{value: uuid.New()}
}

// ParseDecisionID parses a string into a DecisionID
func ParseDecisionID(s string) (DecisionID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return DecisionID{}, fmt.Errorf("invalid decision ID: %w", err)
	}
	return DecisionID{value: id}, nil
}

// MustParseDecisionID parses a string or panics (for tests only)
func MustParseDecisionID(s string) DecisionID {
	id, err := ParseDecisionID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the string representation
func (d DecisionID) String() string {
	return d.value.String()
}

// IsZero returns true if this is the zero value
func (d DecisionID) IsZero() bool {
	return d.value == uuid.Nil
}

// Equals checks if two DecisionIDs are equal
func (d DecisionID) Equals(other DecisionID) bool {
	return d.value == other.value
}

// MarshalJSON implements json.Marshaler
func (d DecisionID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.value.String() + `"`), nil
}

// MarshalYAML implements yaml.Marshaler
func (d DecisionID) MarshalYAML() (interface{}, error) {
	return d.value.String(), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DecisionID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 {
		return fmt.Errorf("invalid decision ID JSON")
	}
	s = s[1 : len(s)-1]

	id, err := ParseDecisionID(s)
	if err != nil {
		return err
	}
	*d = id
	return nil
}
