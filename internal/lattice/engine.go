// Package lattice validates raw configuration trees for the one-dimensional
// sticks lattice before any diagram is drawn. A validation run is a pure
// function from an input tree to a Report: no state survives across calls,
// and concurrent runs need no coordination.
package lattice

import (
	"strconv"
)

// Validate checks a raw configuration tree and returns the full report of
// violations in deterministic order. Malformed user input is always reported
// through the Report; a non-nil error marks a Loader/Engine contract breach
// (the tree is not a mapping of exactly the five top-level groups) and the
// Report is then meaningless.
func Validate(root Value) (Report, error) {
	if root.Kind() != KindMapping {
		return Report{}, &NotAMappingError{Kind: root.Kind()}
	}

	for _, group := range registry {
		gv := root.FieldValue(group.Name)
		if gv.IsAbsent() {
			return Report{}, &MissingGroupError{Group: group.Name}
		}
		if gv.Kind() != KindMapping {
			return Report{}, &GroupNotMappingError{Group: group.Name, Kind: gv.Kind()}
		}
	}
	for _, key := range root.Keys() {
		if _, ok := LookupGroup(key); !ok {
			return Report{}, &UnexpectedGroupError{Group: key}
		}
	}

	diags, valid := validateGroups(root)
	diags = append(diags, validateCrossFields(root, valid)...)

	return Report{Diagnostics: diags}, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
