package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the shape of a raw configuration value as handed over by
// the Loader. Validation decisions are driven off this tag alone, never off
// implicit coercion: a string that happens to look like a number is still a
// string.
type Kind int

const (
	// KindAbsent marks a field that was not present in the input at all.
	KindAbsent Kind = iota
	KindNull
	KindNumber
	KindString
	KindBool
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a single node of the weakly-typed configuration tree. Values are
// immutable once constructed; Clone produces an independent copy for callers
// that need to substitute leaves (e.g. the fixture runner).
type Value struct {
	kind   Kind
	num    float64
	text   string
	truth  bool
	seq    []Value
	keys   []string // mapping keys in document order
	fields map[string]Value
}

// Field pairs a mapping key with its value, preserving document order.
type Field struct {
	Name  string
	Value Value
}

// Absent returns the marker for a missing field.
func Absent() Value { return Value{kind: KindAbsent} }

// Null returns an explicit null value.
func Null() Value { return Value{kind: KindNull} }

// Number wraps a numeric leaf. Integers and floating values share this kind.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a character-string leaf.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Bool wraps one of the two boolean literals.
func Bool(b bool) Value { return Value{kind: KindBool, truth: b} }

// Sequence wraps an ordered list of values.
func Sequence(elems ...Value) Value {
	return Value{kind: KindSequence, seq: elems}
}

// Mapping wraps an ordered set of named fields.
func Mapping(fields ...Field) Value {
	v := Value{
		kind:   KindMapping,
		keys:   make([]string, 0, len(fields)),
		fields: make(map[string]Value, len(fields)),
	}
	for _, f := range fields {
		if _, ok := v.fields[f.Name]; !ok {
			v.keys = append(v.keys, f.Name)
		}
		v.fields[f.Name] = f.Value
	}
	return v
}

// Kind returns the shape tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the value marks a missing field.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Float returns the numeric content. Zero for non-numbers.
func (v Value) Float() float64 { return v.num }

// Text returns the string content. Empty for non-strings.
func (v Value) Text() string { return v.text }

// Truth returns the boolean content. False for non-booleans.
func (v Value) Truth() bool { return v.truth }

// Len returns the element count of a sequence, zero otherwise.
func (v Value) Len() int { return len(v.seq) }

// Index returns the i-th element of a sequence, or Absent when out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Absent()
	}
	return v.seq[i]
}

// Elements returns the elements of a sequence in order.
func (v Value) Elements() []Value { return v.seq }

// Keys returns the mapping keys in document order.
func (v Value) Keys() []string { return v.keys }

// FieldValue returns the value stored under name, or Absent when the key is
// missing or the receiver is not a mapping.
func (v Value) FieldValue(name string) Value {
	if v.kind != KindMapping {
		return Absent()
	}
	fv, ok := v.fields[name]
	if !ok {
		return Absent()
	}
	return fv
}

// Has reports whether a mapping carries the given key.
func (v Value) Has(name string) bool {
	_, ok := v.fields[name]
	return ok
}

// WithFieldValue returns a copy of a mapping with one field replaced or
// appended. Non-mapping receivers are returned unchanged.
func (v Value) WithFieldValue(name string, fv Value) Value {
	if v.kind != KindMapping {
		return v
	}
	out := v.Clone()
	if _, ok := out.fields[name]; !ok {
		out.keys = append(out.keys, name)
	}
	out.fields[name] = fv
	return out
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	out := v
	if v.seq != nil {
		out.seq = make([]Value, len(v.seq))
		for i, e := range v.seq {
			out.seq[i] = e.Clone()
		}
	}
	if v.fields != nil {
		out.keys = append([]string(nil), v.keys...)
		out.fields = make(map[string]Value, len(v.fields))
		for k, e := range v.fields {
			out.fields[k] = e.Clone()
		}
	}
	return out
}

// String renders the value for use in diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindNull:
		return "null"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.text)
	case KindBool:
		return strconv.FormatBool(v.truth)
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, e := range v.seq {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		parts := make([]string, len(v.keys))
		for i, k := range v.keys {
			parts[i] = k + ": " + v.fields[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<invalid>"
	}
}

// Interface converts the tree into plain Go values (map[string]any,
// []any, float64, string, bool, nil), suitable for mapstructure decoding
// or JSON encoding. Absent values become nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.text
	case KindBool:
		return v.truth
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			out[k] = v.fields[k].Interface()
		}
		return out
	default:
		return nil
	}
}
