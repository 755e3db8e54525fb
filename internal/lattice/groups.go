package lattice

import (
	"fmt"
)

// validateGroups walks every field declared in the registry, applies its
// primitive validator, and collects a diagnostic for every failure. It never
// stops at the first failure: a single run must surface all structural
// violations. A group is structurally valid iff it produced no diagnostics;
// the returned set gates the cross-field rules.
func validateGroups(root Value) ([]Diagnostic, map[string]bool) {
	var diags []Diagnostic
	valid := make(map[string]bool, len(registry))

	for _, group := range registry {
		gv := root.FieldValue(group.Name)
		before := len(diags)

		for _, field := range group.Fields {
			diags = append(diags, validateField(group.Name, field, gv.FieldValue(field.Name))...)
		}

		// The key set of a group is closed: unexpected keys are violations too.
		for _, key := range gv.Keys() {
			if _, ok := LookupField(group.Name, key); !ok {
				diags = append(diags, Diagnostic{
					FieldPath: group.Name + "." + key,
					Rule:      RuleUnknownField,
					Value:     gv.FieldValue(key).String(),
					Detail:    fmt.Sprintf("field %q is not part of the %q group", key, group.Name),
				})
			}
		}

		valid[group.Name] = len(diags) == before
	}

	return diags, valid
}

// validateField checks a single declared field against its registry row.
func validateField(group string, field FieldSpec, v Value) []Diagnostic {
	path := group + "." + field.Name

	if v.IsAbsent() {
		return []Diagnostic{{
			FieldPath: path,
			Rule:      RuleMissingField,
			Detail:    fmt.Sprintf("required field %q is missing", field.Name),
		}}
	}

	switch field.Arity {
	case ArityScalar:
		if viol := applyPrimitive(field.Primitive, v); viol != nil {
			return []Diagnostic{violationDiagnostic(path, v, *viol)}
		}
		return nil

	case ArityTuple:
		return tupleDiagnostics(path, v, field.TupleLen, elementValidator(field.Primitive))

	case AritySet:
		return setDiagnostics(path, v, field)

	default:
		return nil
	}
}

// setDiagnostics checks a variable-length sequence field. Elements are
// either plain leaves or, for jump moves, fixed-length tuples.
func setDiagnostics(path string, v Value, field FieldSpec) []Diagnostic {
	if v.Kind() != KindSequence {
		return []Diagnostic{{
			FieldPath: path,
			Rule:      RuleTypeMismatch,
			Value:     v.String(),
			Detail:    fmt.Sprintf("must be a sequence, got %s", v.Kind()),
		}}
	}

	var diags []Diagnostic
	for i, elem := range v.Elements() {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		if field.ElemLen > 0 {
			diags = append(diags, tupleDiagnostics(elemPath, elem, field.ElemLen, elementValidator(field.Primitive))...)
			continue
		}
		if viol := applyPrimitive(field.Primitive, elem); viol != nil {
			diags = append(diags, violationDiagnostic(elemPath, elem, *viol))
		}
	}
	return diags
}

// tupleDiagnostics converts the violations of a fixed-arity tuple check into
// element-addressed diagnostics.
func tupleDiagnostics(path string, v Value, n int, elem ElementValidator) []Diagnostic {
	viols := AsTuple(v, n, elem)
	diags := make([]Diagnostic, 0, len(viols))
	for _, viol := range viols {
		p := path
		offending := v
		if viol.Index >= 0 {
			p = fmt.Sprintf("%s[%d]", path, viol.Index)
			offending = v.Index(viol.Index)
		}
		diags = append(diags, violationDiagnostic(p, offending, viol))
	}
	return diags
}

func applyPrimitive(p Primitive, v Value) *Violation {
	switch p {
	case PrimitiveNumber:
		_, viol := AsNumber(v)
		return viol
	case PrimitivePositiveNumber:
		_, viol := AsPositiveNumber(v)
		return viol
	case PrimitiveInteger:
		_, viol := AsInteger(v)
		return viol
	case PrimitivePositiveInteger:
		_, viol := AsPositiveInteger(v)
		return viol
	case PrimitiveBool:
		_, viol := AsBool(v)
		return viol
	default:
		return nil
	}
}

func elementValidator(p Primitive) ElementValidator {
	return func(v Value) *Violation {
		return applyPrimitive(p, v)
	}
}

func violationDiagnostic(path string, v Value, viol Violation) Diagnostic {
	return Diagnostic{
		FieldPath: path,
		Rule:      viol.Rule,
		Value:     v.String(),
		Detail:    viol.Detail,
	}
}
