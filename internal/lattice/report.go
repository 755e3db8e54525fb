package lattice

// Rule identifies the validation rule a diagnostic reports against.
type Rule string

const (
	RuleTypeMismatch         Rule = "type_mismatch"
	RuleArityMismatch        Rule = "arity_mismatch"
	RuleRangeViolation       Rule = "range_violation"
	RuleMissingField         Rule = "missing_field"
	RuleUnknownField         Rule = "unknown_field"
	RuleContainmentViolation Rule = "containment_violation"
	RuleRoleConflict         Rule = "role_conflict"
	RuleOutOfBoundsIndex     Rule = "out_of_bounds_index"
)

// Diagnostic is a single reported validation failure, addressed to the
// offending field path (e.g. "lattice_parameters.jumping[2][1]").
type Diagnostic struct {
	FieldPath string `json:"fieldPath"`
	Rule      Rule   `json:"rule"`
	Value     string `json:"value,omitempty"`
	Detail    string `json:"detail"`
}

// Report aggregates every violation found during a validation run.
// Diagnostics appear in a deterministic order: registry group order, then
// field declaration order within the group, then element index, with
// cross-field diagnostics after all structural ones.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// IsValid reports whether the run found no violations.
func (r Report) IsValid() bool { return len(r.Diagnostics) == 0 }

// ByRule returns the diagnostics reporting the given rule, in report order.
func (r Report) ByRule(rule Rule) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Rule == rule {
			out = append(out, d)
		}
	}
	return out
}

// ByField returns the diagnostics addressed at the given field path or any
// of its elements, in report order.
func (r Report) ByField(path string) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.FieldPath == path || pathHasPrefix(d.FieldPath, path) {
			out = append(out, d)
		}
	}
	return out
}

// pathHasPrefix reports whether p addresses a descendant of prefix, i.e.
// prefix followed by '.' or '['. A plain string prefix is not enough:
// "box.h" must not match "box.height".
func pathHasPrefix(p, prefix string) bool {
	if len(p) <= len(prefix) || p[:len(prefix)] != prefix {
		return false
	}
	return p[len(prefix)] == '.' || p[len(prefix)] == '['
}
