package domain

import (
	"fmt"
	"math"
	"strconv"
)

// ValueKind is the type held by a Value
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a segment option value: a string, integer, float or bool
type Value struct {
	b    bool
	f    float64
	i    int64
	kind ValueKind
	s    string
}

// StringValue creates a string Value
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// IntValue creates an integer Value
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue creates a float Value
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// BoolValue creates a bool Value
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NewValue converts a decoded configuration value into a Value.
// Returns an error for arrays, tables and other unsupported types.
func NewValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return StringValue(v), nil
	case bool:
		return BoolValue(v), nil
	case int:
		return IntValue(int64(v)), nil
	case int64:
		return IntValue(v), nil
	case int32:
		return IntValue(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, fmt.Errorf("integer %d out of range", v)
		}
		return IntValue(int64(v)), nil
	case float64:
		return FloatValue(v), nil
	case float32:
		return FloatValue(float64(v)), nil
	default:
		return Value{}, fmt.Errorf("unsupported option type %T", raw)
	}
}

// Kind returns the type held by v
func (v Value) Kind() ValueKind { return v.kind }

// Raw returns the underlying Go value (string, int64, float64 or bool)
func (v Value) Raw() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return v.s
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// Options holds the loosely typed options of one segment
type Options map[string]Value

// String returns the string option at key. ok is false when absent or not a string.
func (o Options) String(key string) (string, bool) {
	v, exists := o[key]
	if !exists || v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Int returns the integer option at key. Floats are not integers.
func (o Options) Int(key string) (int64, bool) {
	v, exists := o[key]
	if !exists || v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// Bool returns the bool option at key
func (o Options) Bool(key string) (bool, bool) {
	v, exists := o[key]
	if !exists || v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// StringOr returns the string option at key, or def
func (o Options) StringOr(key, def string) string {
	if s, ok := o.String(key); ok {
		return s
	}
	return def
}

// IntOr returns the integer option at key, or def
func (o Options) IntOr(key string, def int64) int64 {
	if i, ok := o.Int(key); ok {
		return i
	}
	return def
}

// BoolOr returns the bool option at key, or def
func (o Options) BoolOr(key string, def bool) bool {
	if b, ok := o.Bool(key); ok {
		return b
	}
	return def
}

// Clone returns a copy that can be modified without touching o
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}
