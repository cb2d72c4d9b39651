package ability

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueKind discriminates the arms of Value.
type ValueKind int8

const (
	ValueNone ValueKind = iota
	ValueNumber
	ValueString
	ValueBool
)

// Value is the schemaless scalar carried in config custom_params, request
// additional_params and per-instance runtime_data. It survives YAML/JSON
// round trips, so it is a tagged variant rather than a bare any — handlers
// encode and decode explicitly.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
}

// Number wraps a numeric value.
func Number(v float64) Value { return Value{kind: ValueNumber, num: v} }

// String wraps a string value.
func String(v string) Value { return Value{kind: ValueString, str: v} }

// Bool wraps a boolean value.
func Bool(v bool) Value { return Value{kind: ValueBool, b: v} }

// Kind returns the arm this value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Number returns the numeric arm, false if the value is not numeric.
func (v Value) Number() (float64, bool) {
	if v.kind != ValueNumber {
		return 0, false
	}
	return v.num, true
}

// String returns the string arm, false if the value is not a string.
func (v Value) String() (string, bool) {
	if v.kind != ValueString {
		return "", false
	}
	return v.str, true
}

// Bool returns the boolean arm, false if the value is not a bool.
func (v Value) Bool() (bool, bool) {
	if v.kind != ValueBool {
		return false, false
	}
	return v.b, true
}

func (v *Value) set(raw any) error {
	switch t := raw.(type) {
	case nil:
		*v = Value{}
	case bool:
		*v = Bool(t)
	case int:
		*v = Number(float64(t))
	case int64:
		*v = Number(float64(t))
	case float64:
		*v = Number(t)
	case string:
		*v = String(t)
	default:
		return fmt.Errorf("unsupported value type %T", raw)
	}
	return nil
}

// UnmarshalYAML accepts scalar nodes only.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return v.set(raw)
}

// MarshalYAML emits the underlying scalar.
func (v Value) MarshalYAML() (any, error) {
	return v.raw(), nil
}

// UnmarshalJSON accepts scalar tokens only.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return v.set(raw)
}

// MarshalJSON emits the underlying scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw())
}

func (v Value) raw() any {
	switch v.kind {
	case ValueNumber:
		return v.num
	case ValueString:
		return v.str
	case ValueBool:
		return v.b
	default:
		return nil
	}
}
