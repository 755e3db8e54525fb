package app

import "fmt"

// InvalidDocumentError is returned by validate when diagnostics were found.
// The report has already been written; this only sets the exit status.
type InvalidDocumentError struct {
	Path        string
	Diagnostics int
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("%s: %d diagnostics", e.Path, e.Diagnostics)
}

// FixturesFailedError is returned by fixtures when cases misbehaved.
type FixturesFailedError struct {
	Failed int
}

func (e *FixturesFailedError) Error() string {
	return fmt.Sprintf("%d fixture cases failed", e.Failed)
}

// OutputExistsError is returned by init when the target file already exists.
type OutputExistsError struct {
	Path string
}

func (e *OutputExistsError) Error() string {
	return fmt.Sprintf("%q already exists; use --force to overwrite", e.Path)
}
