package loader

import (
	"fmt"
)

type ParseError struct {
	Path    string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("configuration is not valid YAML: %s", e.Wrapped)
	}
	return fmt.Sprintf("%s is not valid YAML: %s", e.Path, e.Wrapped)
}

func (e *ParseError) Unwrap() error { return e.Wrapped }

type EmptyDocumentError struct {
	Path string
}

func (e *EmptyDocumentError) Error() string {
	if e.Path == "" {
		return "configuration document is empty"
	}
	return fmt.Sprintf("%s is empty", e.Path)
}

type DuplicateKeyError struct {
	Key  string
	Line int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate mapping key %q at line %d", e.Key, e.Line)
}

type NonStringKeyError struct {
	Line int
}

func (e *NonStringKeyError) Error() string {
	return fmt.Sprintf("mapping key at line %d is not a string", e.Line)
}
