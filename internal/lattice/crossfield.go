package lattice

import (
	"fmt"
)

// Cross-field rules validate relationships that span configuration groups.
// They run only over groups that passed structural validation, since their
// arithmetic assumes well-typed values, and they run in the declared order
// below so that diagnostic sequences are reproducible.

type crossRule struct {
	id     CrossRuleID
	groups []string
	run    func(root Value) []Diagnostic
}

var crossRules = []crossRule{
	{id: CrossLabelContainment, groups: []string{"box", "box_label"}, run: checkLabelContainment},
	{id: CrossLatticeContainment, groups: []string{"box", "lattice"}, run: checkLatticeContainment},
	{id: CrossNmersBound, groups: []string{"lattice_parameters"}, run: checkNmersBound},
	{id: CrossTickIndexRange, groups: []string{"lattice_parameters"}, run: checkTickIndexRange},
	{id: CrossRoleExclusivity, groups: []string{"lattice_parameters"}, run: checkRoleExclusivity},
	{id: CrossJumpLegality, groups: []string{"lattice_parameters"}, run: checkJumpLegality},
}

func validateCrossFields(root Value, valid map[string]bool) []Diagnostic {
	var diags []Diagnostic
	for _, rule := range crossRules {
		skip := false
		for _, g := range rule.groups {
			if !valid[g] {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		diags = append(diags, rule.run(root)...)
	}
	return diags
}

// Typed accessors. Only called on structurally valid groups, so conversions
// cannot fail.

func numberAt(root Value, group, field string) float64 {
	return root.FieldValue(group).FieldValue(field).Float()
}

func pairAt(root Value, group, field string) [2]float64 {
	v := root.FieldValue(group).FieldValue(field)
	return [2]float64{v.Index(0).Float(), v.Index(1).Float()}
}

func intsAt(root Value, group, field string) []int {
	v := root.FieldValue(group).FieldValue(field)
	out := make([]int, v.Len())
	for i := range out {
		out[i] = int(v.Index(i).Float())
	}
	return out
}

func triplesAt(root Value) [][3]int {
	v := root.FieldValue("lattice_parameters").FieldValue("jumping")
	out := make([][3]int, v.Len())
	for i := range out {
		t := v.Index(i)
		out[i] = [3]int{int(t.Index(0).Float()), int(t.Index(1).Float()), int(t.Index(2).Float())}
	}
	return out
}

// checkLabelContainment requires the label to fit strictly inside its box.
func checkLabelContainment(root Value) []Diagnostic {
	var diags []Diagnostic
	for _, dim := range []string{"height", "width"} {
		label := numberAt(root, "box_label", dim)
		box := numberAt(root, "box", dim)
		if label >= box {
			diags = append(diags, Diagnostic{
				FieldPath: "box_label." + dim,
				Rule:      RuleContainmentViolation,
				Value:     formatNumber(label),
				Detail: fmt.Sprintf("label %s %s must be strictly less than box %s %s",
					dim, formatNumber(label), dim, formatNumber(box)),
			})
		}
	}
	return diags
}

var axisNames = [2]string{"horizontal", "vertical"}

// checkLatticeContainment requires the drawn lattice to stay within the box:
// per axis, offset plus position must not exceed the box extent, and every
// offset and position component must be non-negative.
func checkLatticeContainment(root Value) []Diagnostic {
	extent := [2]float64{numberAt(root, "box", "width"), numberAt(root, "box", "height")}
	offsets := pairAt(root, "lattice", "offsets")

	var diags []Diagnostic

	for _, field := range []string{"offsets", "position_start", "position_end"} {
		pair := pairAt(root, "lattice", field)
		for axis, c := range pair {
			if c < 0 {
				diags = append(diags, Diagnostic{
					FieldPath: fmt.Sprintf("lattice.%s[%d]", field, axis),
					Rule:      RuleRangeViolation,
					Value:     formatNumber(c),
					Detail:    fmt.Sprintf("%s component must be non-negative", axisNames[axis]),
				})
			}
		}
	}

	for _, field := range []string{"position_start", "position_end"} {
		pair := pairAt(root, "lattice", field)
		for axis := range pair {
			if offsets[axis] < 0 || pair[axis] < 0 {
				continue
			}
			if offsets[axis]+pair[axis] > extent[axis] {
				diags = append(diags, Diagnostic{
					FieldPath: fmt.Sprintf("lattice.%s[%d]", field, axis),
					Rule:      RuleContainmentViolation,
					Value:     formatNumber(pair[axis]),
					Detail: fmt.Sprintf("offset %s plus position %s exceeds the box %s extent %s",
						formatNumber(offsets[axis]), formatNumber(pair[axis]),
						axisNames[axis], formatNumber(extent[axis])),
				})
			}
		}
	}

	return diags
}

// checkNmersBound requires 1 <= nmers <= nticks.
func checkNmersBound(root Value) []Diagnostic {
	nticks := int(numberAt(root, "lattice_parameters", "nticks"))
	nmers := int(numberAt(root, "lattice_parameters", "nmers"))
	if nmers >= 1 && nmers <= nticks {
		return nil
	}
	return []Diagnostic{{
		FieldPath: "lattice_parameters.nmers",
		Rule:      RuleRangeViolation,
		Value:     fmt.Sprintf("%d", nmers),
		Detail:    fmt.Sprintf("nmers must be between 1 and nticks (%d)", nticks),
	}}
}

// checkTickIndexRange requires every referenced tick index, including the
// origin of each jump move, to lie in [1, nticks].
func checkTickIndexRange(root Value) []Diagnostic {
	nticks := int(numberAt(root, "lattice_parameters", "nticks"))
	var diags []Diagnostic

	for _, field := range []string{"adsorbing", "desorbing", "fixed"} {
		for i, tick := range intsAt(root, "lattice_parameters", field) {
			if tick < 1 || tick > nticks {
				diags = append(diags, outOfBounds(
					fmt.Sprintf("lattice_parameters.%s[%d]", field, i), tick, nticks))
			}
		}
	}

	for i, move := range triplesAt(root) {
		if from := move[0]; from < 1 || from > nticks {
			diags = append(diags, outOfBounds(
				fmt.Sprintf("lattice_parameters.jumping[%d][0]", i), from, nticks))
		}
	}

	return diags
}

func outOfBounds(path string, tick, nticks int) Diagnostic {
	return Diagnostic{
		FieldPath: path,
		Rule:      RuleOutOfBoundsIndex,
		Value:     fmt.Sprintf("%d", tick),
		Detail:    fmt.Sprintf("tick index %d is outside [1, %d]", tick, nticks),
	}
}

// checkRoleExclusivity requires the role sets to be pairwise disjoint and
// free of internal duplicates: a tick carries at most one role. Each
// offending tick yields exactly one diagnostic, addressed at the occurrence
// that introduced the conflict.
func checkRoleExclusivity(root Value) []Diagnostic {
	type assignment struct {
		role string
		path string
	}
	first := make(map[int]assignment)
	conflicted := make(map[int]bool)
	var diags []Diagnostic

	record := func(tick int, role, path string) {
		prev, seen := first[tick]
		if !seen {
			first[tick] = assignment{role: role, path: path}
			return
		}
		if conflicted[tick] {
			return
		}
		conflicted[tick] = true
		diags = append(diags, Diagnostic{
			FieldPath: path,
			Rule:      RuleRoleConflict,
			Value:     fmt.Sprintf("%d", tick),
			Detail:    fmt.Sprintf("tick %d already carries the %q role (%s)", tick, prev.role, prev.path),
		})
	}

	for _, field := range []string{"adsorbing", "desorbing", "fixed"} {
		for i, tick := range intsAt(root, "lattice_parameters", field) {
			record(tick, field, fmt.Sprintf("lattice_parameters.%s[%d]", field, i))
		}
	}
	for i, move := range triplesAt(root) {
		record(move[0], "jumping", fmt.Sprintf("lattice_parameters.jumping[%d][0]", i))
	}

	return diags
}

// checkJumpLegality requires both candidate moves of every jump triple to
// land on an existing tick: steps must be positive and the destinations
// from-left and from+right must stay in [1, nticks].
func checkJumpLegality(root Value) []Diagnostic {
	nticks := int(numberAt(root, "lattice_parameters", "nticks"))
	var diags []Diagnostic

	for i, move := range triplesAt(root) {
		from, left, right := move[0], move[1], move[2]

		switch {
		case left <= 0:
			diags = append(diags, Diagnostic{
				FieldPath: fmt.Sprintf("lattice_parameters.jumping[%d][1]", i),
				Rule:      RuleRangeViolation,
				Value:     fmt.Sprintf("%d", left),
				Detail:    "left jump step must be a positive integer",
			})
		case from-left < 1:
			diags = append(diags, Diagnostic{
				FieldPath: fmt.Sprintf("lattice_parameters.jumping[%d][1]", i),
				Rule:      RuleOutOfBoundsIndex,
				Value:     fmt.Sprintf("%d", left),
				Detail:    fmt.Sprintf("left jump from tick %d lands on %d, outside [1, %d]", from, from-left, nticks),
			})
		}

		switch {
		case right <= 0:
			diags = append(diags, Diagnostic{
				FieldPath: fmt.Sprintf("lattice_parameters.jumping[%d][2]", i),
				Rule:      RuleRangeViolation,
				Value:     fmt.Sprintf("%d", right),
				Detail:    "right jump step must be a positive integer",
			})
		case from+right > nticks:
			diags = append(diags, Diagnostic{
				FieldPath: fmt.Sprintf("lattice_parameters.jumping[%d][2]", i),
				Rule:      RuleOutOfBoundsIndex,
				Value:     fmt.Sprintf("%d", right),
				Detail:    fmt.Sprintf("right jump from tick %d lands on %d, outside [1, %d]", from, from+right, nticks),
			})
		}
	}

	return diags
}
