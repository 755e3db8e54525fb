package lattice

import (
	"fmt"
	"math"
)

// Violation is the outcome of a primitive validator rejecting a leaf.
// Index addresses the offending element for sequence values, -1 otherwise.
type Violation struct {
	Rule   Rule
	Detail string
	Index  int
}

func leafViolation(rule Rule, format string, args ...any) *Violation {
	return &Violation{Rule: rule, Detail: fmt.Sprintf(format, args...), Index: -1}
}

// AsNumber accepts integer and floating leaves. Numeric-looking strings,
// booleans and sequences are rejected: the input tree is weakly typed and
// "0" is not 0.
func AsNumber(v Value) (float64, *Violation) {
	if v.Kind() != KindNumber {
		return 0, leafViolation(RuleTypeMismatch, "must be a number, got %s", v.Kind())
	}
	return v.Float(), nil
}

// AsPositiveNumber accepts numbers strictly greater than zero.
func AsPositiveNumber(v Value) (float64, *Violation) {
	f, viol := AsNumber(v)
	if viol != nil {
		return 0, viol
	}
	if f <= 0 {
		return 0, leafViolation(RuleRangeViolation, "must be greater than zero, got %s", v)
	}
	return f, nil
}

// maxExactInteger is the largest float64 magnitude whose integers are all
// exactly representable; beyond it the conversion to int is not trustworthy.
const maxExactInteger = float64(1 << 53)

// integral converts an already-accepted number to int, rejecting fractional
// parts and magnitudes too large to convert exactly.
func integral(v Value, f float64) (int, *Violation) {
	if f != math.Trunc(f) {
		return 0, leafViolation(RuleTypeMismatch, "must be an integer, got %s", v)
	}
	if math.Abs(f) > maxExactInteger {
		return 0, leafViolation(RuleRangeViolation, "magnitude of %s exceeds the exact integer range", v)
	}
	return int(f), nil
}

// AsInteger accepts numbers with no fractional part.
func AsInteger(v Value) (int, *Violation) {
	f, viol := AsNumber(v)
	if viol != nil {
		return 0, viol
	}
	return integral(v, f)
}

// AsPositiveInteger accepts integers strictly greater than zero. Positivity
// is checked before integrality, so a negative fraction is a range violation,
// not a type mismatch.
func AsPositiveInteger(v Value) (int, *Violation) {
	f, viol := AsPositiveNumber(v)
	if viol != nil {
		return 0, viol
	}
	return integral(v, f)
}

// AsBool accepts only the two boolean literals. 0, 1 and string
// surrogates are rejected even though they are truthy elsewhere.
func AsBool(v Value) (bool, *Violation) {
	if v.Kind() != KindBool {
		return false, leafViolation(RuleTypeMismatch, "must be true or false, got %s %s", v.Kind(), v)
	}
	return v.Truth(), nil
}

// ElementValidator checks a single element of a tuple or set.
type ElementValidator func(Value) *Violation

// NumberElement adapts AsNumber for tuple validation.
func NumberElement(v Value) *Violation {
	_, viol := AsNumber(v)
	return viol
}

// IntegerElement adapts AsInteger for tuple and set validation.
func IntegerElement(v Value) *Violation {
	_, viol := AsInteger(v)
	return viol
}

// AsTuple accepts only a sequence of exactly n elements where every element
// passes elem. Every failing element yields its own violation, carrying the
// element index; a wrong length yields a single arity violation.
func AsTuple(v Value, n int, elem ElementValidator) []Violation {
	if v.Kind() != KindSequence {
		return []Violation{*leafViolation(RuleTypeMismatch, "must be a sequence of %d numbers, got %s", n, v.Kind())}
	}
	if v.Len() != n {
		return []Violation{*leafViolation(RuleArityMismatch, "must have exactly %d elements, got %d", n, v.Len())}
	}
	var viols []Violation
	for i := 0; i < v.Len(); i++ {
		if viol := elem(v.Index(i)); viol != nil {
			viol.Index = i
			viols = append(viols, *viol)
		}
	}
	return viols
}

// AsNumberTuple accepts a sequence of exactly n numbers and returns the
// coerced components on success.
func AsNumberTuple(v Value, n int) ([]float64, []Violation) {
	if viols := AsTuple(v, n, NumberElement); len(viols) > 0 {
		return nil, viols
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.Index(i).Float()
	}
	return out, nil
}
