package lattice

// Shared builders for a known-good configuration tree. Tests mutate copies
// via WithFieldValue to introduce exactly the defect under test.

func pair(a, b float64) Value {
	return Sequence(Number(a), Number(b))
}

func ints(ns ...int) Value {
	elems := make([]Value, len(ns))
	for i, n := range ns {
		elems[i] = Number(float64(n))
	}
	return Sequence(elems...)
}

func triple(from, left, right int) Value {
	return ints(from, left, right)
}

func validDoc() Value {
	return Mapping(
		Field{Name: "box", Value: Mapping(
			Field{Name: "position_top", Value: pair(0, 15)},
			Field{Name: "height", Value: Number(15)},
			Field{Name: "width", Value: Number(15)},
		)},
		Field{Name: "box_label", Value: Mapping(
			Field{Name: "height", Value: Number(2)},
			Field{Name: "width", Value: Number(2)},
		)},
		Field{Name: "lattice", Value: Mapping(
			Field{Name: "offsets", Value: pair(1, 0)},
			Field{Name: "position_start", Value: pair(1, 4)},
			Field{Name: "position_end", Value: pair(13, 4)},
			Field{Name: "vertical_spacing", Value: Number(1)},
		)},
		Field{Name: "lattice_elements", Value: Mapping(
			Field{Name: "arrow_height", Value: Number(1)},
			Field{Name: "circle_radius", Value: Number(0.4)},
			Field{Name: "tick_height", Value: Number(0.5)},
			Field{Name: "vacancies_visible", Value: Bool(true)},
		)},
		Field{Name: "lattice_parameters", Value: Mapping(
			Field{Name: "nticks", Value: Number(10)},
			Field{Name: "nmers", Value: Number(1)},
			Field{Name: "adsorbing", Value: ints(2)},
			Field{Name: "desorbing", Value: ints(7)},
			Field{Name: "fixed", Value: ints(5)},
			Field{Name: "jumping", Value: Sequence(triple(4, 2, 2))},
		)},
	)
}

// withGroupField replaces one field inside one group of a document copy.
func withGroupField(doc Value, group, field string, v Value) Value {
	return doc.WithFieldValue(group, doc.FieldValue(group).WithFieldValue(field, v))
}
