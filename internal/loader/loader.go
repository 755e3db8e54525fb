// Package loader parses textual YAML configurations into the weakly-typed
// trees the validation engine consumes. Parsing works at the yaml.Node level
// so that scalar tags survive intact: "0" stays a string, 0 stays a number,
// and 0/1 never become booleans. The engine, not the loader, decides what is
// acceptable.
package loader

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/AndresGarciaEscovar/latexlattices/internal/lattice"
)

//go:embed parameters.yaml
var defaultParameters []byte

// Load parses a YAML document into a raw configuration tree.
func Load(data []byte) (lattice.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return lattice.Absent(), &ParseError{Wrapped: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return lattice.Absent(), &EmptyDocumentError{}
	}
	return FromNode(doc.Content[0])
}

// LoadFile parses the YAML file at path into a raw configuration tree.
func LoadFile(path string) (lattice.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lattice.Absent(), err
	}
	v, err := Load(data)
	if err != nil {
		annotate(err, path)
		return lattice.Absent(), err
	}
	return v, nil
}

// LoadFileWithDefaults parses the YAML file at path and overlays it onto the
// canonical default configuration, so partial documents only need to name
// the fields they change.
func LoadFileWithDefaults(path string) (lattice.Value, error) {
	user, err := LoadFile(path)
	if err != nil {
		return lattice.Absent(), err
	}
	return Overlay(Default(), user), nil
}

// Default returns the canonical default configuration shipped with the tool.
func Default() lattice.Value {
	v, err := Load(defaultParameters)
	if err != nil {
		panic("embedded default parameters are not parseable: " + err.Error())
	}
	return v
}

// DefaultDocument returns the default configuration as YAML text, for
// writing starter files.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultParameters))
	copy(out, defaultParameters)
	return out
}

// Overlay replaces fields of base with the corresponding fields of over,
// two levels deep: whole groups are replaced when the overlay value is not a
// mapping, individual fields otherwise. Groups unknown to base are appended.
func Overlay(base, over lattice.Value) lattice.Value {
	if base.Kind() != lattice.KindMapping || over.Kind() != lattice.KindMapping {
		return over
	}
	out := base.Clone()
	for _, group := range over.Keys() {
		og := over.FieldValue(group)
		bg := out.FieldValue(group)
		if og.Kind() != lattice.KindMapping || bg.Kind() != lattice.KindMapping {
			out = out.WithFieldValue(group, og)
			continue
		}
		merged := bg
		for _, field := range og.Keys() {
			merged = merged.WithFieldValue(field, og.FieldValue(field))
		}
		out = out.WithFieldValue(group, merged)
	}
	return out
}

// FromNode converts a parsed yaml.Node into a raw tree value. Exported so
// that fixture manifests, which embed configuration fragments, can share the
// strict scalar handling.
func FromNode(n *yaml.Node) (lattice.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return FromNode(n.Alias)

	case yaml.MappingNode:
		fields := make([]lattice.Field, 0, len(n.Content)/2)
		seen := make(map[string]bool, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return lattice.Absent(), &NonStringKeyError{Line: keyNode.Line}
			}
			if seen[keyNode.Value] {
				return lattice.Absent(), &DuplicateKeyError{Key: keyNode.Value, Line: keyNode.Line}
			}
			seen[keyNode.Value] = true
			fv, err := FromNode(valNode)
			if err != nil {
				return lattice.Absent(), err
			}
			fields = append(fields, lattice.Field{Name: keyNode.Value, Value: fv})
		}
		return lattice.Mapping(fields...), nil

	case yaml.SequenceNode:
		elems := make([]lattice.Value, 0, len(n.Content))
		for _, c := range n.Content {
			ev, err := FromNode(c)
			if err != nil {
				return lattice.Absent(), err
			}
			elems = append(elems, ev)
		}
		return lattice.Sequence(elems...), nil

	case yaml.ScalarNode:
		return scalarValue(n)

	default:
		return lattice.Null(), nil
	}
}

func scalarValue(n *yaml.Node) (lattice.Value, error) {
	switch n.Tag {
	case "!!int":
		// Base 0 so hex and octal spellings keep their value.
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return lattice.Absent(), &ParseError{Wrapped: err}
		}
		return lattice.Number(float64(i)), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return lattice.Absent(), &ParseError{Wrapped: err}
		}
		return lattice.Number(f), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return lattice.Absent(), &ParseError{Wrapped: err}
		}
		return lattice.Bool(b), nil
	case "!!null":
		return lattice.Null(), nil
	default:
		// Timestamps and unknown tags are carried as strings; the engine
		// reports the mismatch.
		return lattice.String(n.Value), nil
	}
}

func annotate(err error, path string) {
	switch e := err.(type) {
	case *ParseError:
		e.Path = path
	case *EmptyDocumentError:
		e.Path = path
	}
}
