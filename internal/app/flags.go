package app

import (
	"fmt"
)

// formatValue is a pflag.Value restricted to the reporter formats, giving the
// flag a proper type name in help text.
type formatValue string

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Set(v string) error {
	switch v {
	case "text", "json":
		*f = formatValue(v)
		return nil
	}
	return fmt.Errorf("must be 'text' or 'json'")
}

func (f *formatValue) Type() string { return "<format>" }

// pathValue is a pflag.Value holding a filesystem path.
type pathValue string

func (p *pathValue) String() string { return string(*p) }

func (p *pathValue) Set(v string) error {
	*p = pathValue(v)
	return nil
}

func (p *pathValue) Type() string { return "<path>" }
