// Package fixture runs curated corpora of known-good and known-bad
// configuration documents against the validation engine. A manifest carries
// one valid baseline document plus a list of substitutions, each of which
// must make validation fail.
package fixture

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/AndresGarciaEscovar/latexlattices/internal/lattice"
	"github.com/AndresGarciaEscovar/latexlattices/internal/loader"
)

//go:embed manifest_schema.json
var manifestSchemaBytes []byte

// manifestSchema is the compiled shape check applied to every manifest before
// its documents are interpreted.
var manifestSchema = compileManifestSchema()

func compileManifestSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(manifestSchemaBytes))
	if err != nil {
		panic("embedded manifest schema is not valid JSON: " + err.Error())
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("manifest.json", doc); err != nil {
		panic("registering embedded manifest schema: " + err.Error())
	}
	return c.MustCompile("manifest.json")
}

// Substitution names a field path in the valid document and the values that,
// substituted there, must each make validation fail.
type Substitution struct {
	FieldPath string
	Values    []lattice.Value
}

// Manifest is one parsed fixture corpus.
type Manifest struct {
	Valid   lattice.Value
	Invalid []Substitution
}

// Cases returns the total number of invalid cases the manifest describes.
func (m *Manifest) Cases() int {
	n := 0
	for _, s := range m.Invalid {
		n += len(s.Values)
	}
	return n
}

// ParseManifest parses and shape-checks a YAML fixture manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &ManifestParseError{Wrapped: err}
	}
	if node.Kind == 0 || len(node.Content) == 0 {
		return nil, &ManifestParseError{Wrapped: errEmptyManifest}
	}

	root, err := loader.FromNode(node.Content[0])
	if err != nil {
		return nil, &ManifestParseError{Wrapped: err}
	}
	if err := checkShape(root); err != nil {
		return nil, err
	}
	return buildManifest(root), nil
}

// ParseManifestFile reads and parses a fixture manifest from disk.
func ParseManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseManifest(data)
	if err != nil {
		annotate(err, path)
		return nil, err
	}
	return m, nil
}

// checkShape round-trips the document through JSON and validates it against
// the embedded manifest schema.
func checkShape(root lattice.Value) error {
	raw, err := json.Marshal(root.Interface())
	if err != nil {
		return &ManifestShapeError{Wrapped: err}
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ManifestShapeError{Wrapped: err}
	}
	if err := manifestSchema.Validate(doc); err != nil {
		return &ManifestShapeError{Wrapped: err}
	}
	return nil
}

// buildManifest assumes root already passed the shape check.
func buildManifest(root lattice.Value) *Manifest {
	m := &Manifest{Valid: root.FieldValue("valid")}
	invalid := root.FieldValue("invalid")
	for i := 0; i < invalid.Len(); i++ {
		entry := invalid.Index(i)
		sub := Substitution{FieldPath: entry.FieldValue("fieldPath").Text()}
		values := entry.FieldValue("values")
		for j := 0; j < values.Len(); j++ {
			sub.Values = append(sub.Values, values.Index(j))
		}
		m.Invalid = append(m.Invalid, sub)
	}
	return m
}

func annotate(err error, path string) {
	switch e := err.(type) {
	case *ManifestParseError:
		e.Path = path
	case *ManifestShapeError:
		e.Path = path
	}
}
