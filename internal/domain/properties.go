package domain

import (
	"encoding/json"
	"fmt"
)

// PropertyKind discriminates the variant held by a PropertyValue
type PropertyKind int

const (
	PropertyKindString PropertyKind = iota
	PropertyKindNumber
	PropertyKindBool
)

// PropertyValue is a typed variant (string, number, or bool) used for
// open-ended material and recipe attributes. Keeping the variant typed keeps
// serialization deterministic; all current keys are presentation-only and
// never consulted by resolution logic.
type PropertyValue struct {
	Kind PropertyKind
	Str  string
	Num  float64
	Bool bool
}

// StringProperty creates a string-valued property
func StringProperty(v string) PropertyValue {
	return PropertyValue{Kind: PropertyKindString, Str: v}
}

// NumberProperty creates a number-valued property
func NumberProperty(v float64) PropertyValue {
	return PropertyValue{Kind: PropertyKindNumber, Num: v}
}

// BoolProperty creates a bool-valued property
func BoolProperty(v bool) PropertyValue {
	return PropertyValue{Kind: PropertyKindBool, Bool: v}
}

// MarshalJSON encodes the underlying variant directly
func (p PropertyValue) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PropertyKindNumber:
		return json.Marshal(p.Num)
	case PropertyKindBool:
		return json.Marshal(p.Bool)
	default:
		return json.Marshal(p.Str)
	}
}

// UnmarshalJSON decodes a JSON scalar into the matching variant
func (p *PropertyValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*p = StringProperty(v)
	case float64:
		*p = NumberProperty(v)
	case bool:
		*p = BoolProperty(v)
	default:
		return fmt.Errorf("%w: property value must be a string, number, or bool", ErrInvalidInput)
	}
	return nil
}

// Properties is a string-keyed map of typed variants
type Properties map[string]PropertyValue
