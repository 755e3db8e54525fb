package render

import "fmt"

// RefusedInvalidConfigError indicates a render attempt with a configuration
// whose validation report still carries diagnostics.
type RefusedInvalidConfigError struct {
	Diagnostics int
}

func (e *RefusedInvalidConfigError) Error() string {
	return fmt.Sprintf("refusing to render: configuration has %d outstanding diagnostics", e.Diagnostics)
}

// TemplateExecutionError indicates the document template failed to execute.
type TemplateExecutionError struct {
	Wrapped error
}

func (e *TemplateExecutionError) Error() string {
	return fmt.Sprintf("executing document template: %v", e.Wrapped)
}

func (e *TemplateExecutionError) Unwrap() error {
	return e.Wrapped
}
