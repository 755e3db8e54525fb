package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    Value
		want Kind
	}{
		{name: "absent", v: Absent(), want: KindAbsent},
		{name: "zero value is absent", v: Value{}, want: KindAbsent},
		{name: "null", v: Null(), want: KindNull},
		{name: "number", v: Number(3.5), want: KindNumber},
		{name: "string", v: String("0"), want: KindString},
		{name: "bool", v: Bool(true), want: KindBool},
		{name: "sequence", v: Sequence(Number(1)), want: KindSequence},
		{name: "mapping", v: Mapping(), want: KindMapping},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.v.Kind())
		})
	}
}

func TestValueAccessors(t *testing.T) {
	t.Parallel()

	m := Mapping(
		Field{Name: "height", Value: Number(15)},
		Field{Name: "visible", Value: Bool(true)},
		Field{Name: "name", Value: String("box")},
	)

	assert.Equal(t, []string{"height", "visible", "name"}, m.Keys())
	assert.True(t, m.Has("height"))
	assert.False(t, m.Has("width"))
	assert.InDelta(t, 15.0, m.FieldValue("height").Float(), 0)
	assert.True(t, m.FieldValue("visible").Truth())
	assert.Equal(t, "box", m.FieldValue("name").Text())
	assert.True(t, m.FieldValue("width").IsAbsent())

	seq := Sequence(Number(1), Number(2), Number(3))
	assert.Equal(t, 3, seq.Len())
	assert.InDelta(t, 2.0, seq.Index(1).Float(), 0)
	assert.True(t, seq.Index(99).IsAbsent())
}

func TestValueWithFieldValue(t *testing.T) {
	t.Parallel()

	orig := Mapping(Field{Name: "height", Value: Number(15)})
	mod := orig.WithFieldValue("height", Number(3))

	// The original must be untouched.
	assert.InDelta(t, 15.0, orig.FieldValue("height").Float(), 0)
	assert.InDelta(t, 3.0, mod.FieldValue("height").Float(), 0)

	// Setting an unknown key appends it.
	added := orig.WithFieldValue("width", Number(7))
	assert.Equal(t, []string{"height", "width"}, added.Keys())
	assert.Equal(t, []string{"height"}, orig.Keys())
}

func TestValueClone(t *testing.T) {
	t.Parallel()

	orig := Mapping(
		Field{Name: "ticks", Value: Sequence(Number(1), Number(2))},
	)
	cp := orig.Clone()
	mod := cp.WithFieldValue("ticks", Sequence(Number(9)))

	require.Equal(t, 2, orig.FieldValue("ticks").Len())
	assert.Equal(t, 1, mod.FieldValue("ticks").Len())
}

func TestValueString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "integer number", v: Number(15), want: "15"},
		{name: "fractional number", v: Number(0.4), want: "0.4"},
		{name: "string is quoted", v: String("0"), want: `"0"`},
		{name: "bool", v: Bool(false), want: "false"},
		{name: "null", v: Null(), want: "null"},
		{name: "sequence", v: Sequence(Number(1), String("a")), want: `[1, "a"]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestValueInterface(t *testing.T) {
	t.Parallel()

	doc := Mapping(
		Field{Name: "n", Value: Number(2)},
		Field{Name: "flag", Value: Bool(true)},
		Field{Name: "label", Value: String("x")},
		Field{Name: "empty", Value: Null()},
		Field{Name: "seq", Value: Sequence(Number(1), Number(2))},
	)

	got, ok := doc.Interface().(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 2.0, got["n"].(float64), 0)
	assert.Equal(t, true, got["flag"])
	assert.Equal(t, "x", got["label"])
	assert.Nil(t, got["empty"])
	assert.Equal(t, []any{1.0, 2.0}, got["seq"])
}
