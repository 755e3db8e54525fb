package fixture

import (
	"errors"
	"fmt"
)

var errEmptyManifest = errors.New("manifest document is empty")

// ManifestParseError indicates a fixture manifest could not be parsed as YAML.
type ManifestParseError struct {
	Path    string
	Wrapped error
}

func (e *ManifestParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing fixture manifest: %v", e.Wrapped)
	}
	return fmt.Sprintf("parsing fixture manifest %q: %v", e.Path, e.Wrapped)
}

func (e *ManifestParseError) Unwrap() error {
	return e.Wrapped
}

// ManifestShapeError indicates a fixture manifest does not match the expected
// manifest shape.
type ManifestShapeError struct {
	Path    string
	Wrapped error
}

func (e *ManifestShapeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("fixture manifest has the wrong shape: %v", e.Wrapped)
	}
	return fmt.Sprintf("fixture manifest %q has the wrong shape: %v", e.Path, e.Wrapped)
}

func (e *ManifestShapeError) Unwrap() error {
	return e.Wrapped
}

// BaselineInvalidError indicates the manifest's valid document did not
// validate cleanly, which makes every derived case meaningless.
type BaselineInvalidError struct {
	Diagnostics int
}

func (e *BaselineInvalidError) Error() string {
	return fmt.Sprintf("manifest valid document produced %d diagnostics; it must validate cleanly", e.Diagnostics)
}

// UnknownFieldPathError indicates a substitution targets a path that does not
// exist in the valid document.
type UnknownFieldPathError struct {
	FieldPath string
}

func (e *UnknownFieldPathError) Error() string {
	return fmt.Sprintf("substitution targets unknown field path %q", e.FieldPath)
}

// BadFieldPathError indicates a substitution path could not be parsed.
type BadFieldPathError struct {
	FieldPath string
}

func (e *BadFieldPathError) Error() string {
	return fmt.Sprintf("malformed field path %q; want group.field or group.field[i]", e.FieldPath)
}
