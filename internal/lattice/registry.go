package lattice

// The registry is the single source of truth for the shape of every
// configuration field. Group validators interpret it for structural checks;
// the cross-field rules reference groups by name. It is built once at init
// and never mutated, so concurrent validation runs share it without locking.

// Primitive names the leaf validator a field (or element) must pass.
type Primitive int

const (
	PrimitiveNumber Primitive = iota
	PrimitivePositiveNumber
	PrimitiveInteger
	PrimitivePositiveInteger
	PrimitiveBool
)

func (p Primitive) String() string {
	switch p {
	case PrimitiveNumber:
		return "number"
	case PrimitivePositiveNumber:
		return "positive number"
	case PrimitiveInteger:
		return "integer"
	case PrimitivePositiveInteger:
		return "positive integer"
	case PrimitiveBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Arity names the container shape of a field.
type Arity int

const (
	ArityScalar Arity = iota
	ArityTuple        // fixed-length sequence
	AritySet          // variable-length sequence
)

// CrossRuleID names a cross-field rule in the registry.
type CrossRuleID string

const (
	CrossLabelContainment   CrossRuleID = "label_containment"
	CrossLatticeContainment CrossRuleID = "lattice_containment"
	CrossNmersBound         CrossRuleID = "nmers_bound"
	CrossTickIndexRange     CrossRuleID = "tick_index_range"
	CrossRoleExclusivity    CrossRuleID = "role_exclusivity"
	CrossJumpLegality       CrossRuleID = "jump_legality"
)

// FieldSpec declares the expected shape of one configuration field.
type FieldSpec struct {
	Name      string
	Arity     Arity
	Primitive Primitive // the scalar primitive, or the element primitive for tuples and sets
	TupleLen  int       // fixed length when Arity is ArityTuple
	ElemLen   int       // >0 when set elements are themselves fixed-length tuples
	Rules     []CrossRuleID
}

// GroupSpec declares one top-level configuration group and its fields in
// declaration order. Diagnostic ordering follows this declaration order.
type GroupSpec struct {
	Name   string
	Fields []FieldSpec
}

var registry = []GroupSpec{
	{
		Name: "box",
		Fields: []FieldSpec{
			{Name: "position_top", Arity: ArityTuple, TupleLen: 2, Primitive: PrimitiveNumber},
			{Name: "height", Primitive: PrimitivePositiveNumber,
				Rules: []CrossRuleID{CrossLabelContainment, CrossLatticeContainment}},
			{Name: "width", Primitive: PrimitivePositiveNumber,
				Rules: []CrossRuleID{CrossLabelContainment, CrossLatticeContainment}},
		},
	},
	{
		Name: "box_label",
		Fields: []FieldSpec{
			{Name: "height", Primitive: PrimitivePositiveNumber, Rules: []CrossRuleID{CrossLabelContainment}},
			{Name: "width", Primitive: PrimitivePositiveNumber, Rules: []CrossRuleID{CrossLabelContainment}},
		},
	},
	{
		Name: "lattice",
		Fields: []FieldSpec{
			{Name: "offsets", Arity: ArityTuple, TupleLen: 2, Primitive: PrimitiveNumber,
				Rules: []CrossRuleID{CrossLatticeContainment}},
			{Name: "position_start", Arity: ArityTuple, TupleLen: 2, Primitive: PrimitiveNumber,
				Rules: []CrossRuleID{CrossLatticeContainment}},
			{Name: "position_end", Arity: ArityTuple, TupleLen: 2, Primitive: PrimitiveNumber,
				Rules: []CrossRuleID{CrossLatticeContainment}},
			{Name: "vertical_spacing", Primitive: PrimitivePositiveNumber},
		},
	},
	{
		Name: "lattice_elements",
		Fields: []FieldSpec{
			{Name: "arrow_height", Primitive: PrimitivePositiveNumber},
			{Name: "circle_radius", Primitive: PrimitivePositiveNumber},
			{Name: "tick_height", Primitive: PrimitivePositiveNumber},
			{Name: "vacancies_visible", Primitive: PrimitiveBool},
		},
	},
	{
		Name: "lattice_parameters",
		Fields: []FieldSpec{
			{Name: "nticks", Primitive: PrimitivePositiveInteger,
				Rules: []CrossRuleID{CrossNmersBound, CrossTickIndexRange, CrossJumpLegality}},
			{Name: "nmers", Primitive: PrimitivePositiveInteger, Rules: []CrossRuleID{CrossNmersBound}},
			{Name: "adsorbing", Arity: AritySet, Primitive: PrimitiveInteger,
				Rules: []CrossRuleID{CrossTickIndexRange, CrossRoleExclusivity}},
			{Name: "desorbing", Arity: AritySet, Primitive: PrimitiveInteger,
				Rules: []CrossRuleID{CrossTickIndexRange, CrossRoleExclusivity}},
			{Name: "fixed", Arity: AritySet, Primitive: PrimitiveInteger,
				Rules: []CrossRuleID{CrossTickIndexRange, CrossRoleExclusivity}},
			{Name: "jumping", Arity: AritySet, Primitive: PrimitiveInteger, ElemLen: 3,
				Rules: []CrossRuleID{CrossTickIndexRange, CrossRoleExclusivity, CrossJumpLegality}},
		},
	},
}

var groupIndex = func() map[string]*GroupSpec {
	m := make(map[string]*GroupSpec, len(registry))
	for i := range registry {
		m[registry[i].Name] = &registry[i]
	}
	return m
}()

// GroupNames returns the top-level group names in registry order.
func GroupNames() []string {
	names := make([]string, len(registry))
	for i, g := range registry {
		names[i] = g.Name
	}
	return names
}

// LookupGroup returns the declaration of the named group.
func LookupGroup(name string) (GroupSpec, bool) {
	g, ok := groupIndex[name]
	if !ok {
		return GroupSpec{}, false
	}
	return *g, true
}

// LookupField returns the declaration of the named field within a group.
func LookupField(group, field string) (FieldSpec, bool) {
	g, ok := groupIndex[group]
	if !ok {
		return FieldSpec{}, false
	}
	for _, f := range g.Fields {
		if f.Name == field {
			return f, true
		}
	}
	return FieldSpec{}, false
}
