package lattice

import (
	"fmt"
)

// The errors in this file mark breaches of the Loader/Engine contract: the
// Loader is expected to hand over a mapping with exactly the five top-level
// configuration groups. Anything below that level is user input and is
// reported through Diagnostics, never through errors.

type NotAMappingError struct {
	Kind Kind
}

func (e *NotAMappingError) Error() string {
	return fmt.Sprintf("configuration root must be a mapping, got %s", e.Kind)
}

type MissingGroupError struct {
	Group string
}

func (e *MissingGroupError) Error() string {
	return fmt.Sprintf("configuration is missing the top-level group %q", e.Group)
}

type UnexpectedGroupError struct {
	Group string
}

func (e *UnexpectedGroupError) Error() string {
	return fmt.Sprintf("configuration contains an unexpected top-level group %q", e.Group)
}

type GroupNotMappingError struct {
	Group string
	Kind  Kind
}

func (e *GroupNotMappingError) Error() string {
	return fmt.Sprintf("top-level group %q must be a mapping, got %s", e.Group, e.Kind)
}

type NotValidatedError struct {
	Report Report
}

func (e *NotValidatedError) Error() string {
	return fmt.Sprintf("configuration has %d unresolved diagnostics and cannot be decoded", len(e.Report.Diagnostics))
}

type DecodeError struct {
	Wrapped error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("validated configuration could not be decoded: %s", e.Wrapped)
}

func (e *DecodeError) Unwrap() error { return e.Wrapped }
