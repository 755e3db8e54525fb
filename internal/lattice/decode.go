package lattice

import (
	"github.com/mitchellh/mapstructure"
)

// Decode converts a raw configuration tree into its typed form. It validates
// the tree first and refuses to decode anything that is not clean: the typed
// structs are only ever built from well-formed input, so the Renderer never
// sees unvalidated data.
func Decode(root Value) (*Config, error) {
	report, err := Validate(root)
	if err != nil {
		return nil, err
	}
	if !report.IsValid() {
		return nil, &NotValidatedError{Report: report}
	}
	return decodeValidated(root)
}

func decodeValidated(root Value) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, &DecodeError{Wrapped: err}
	}
	if err := dec.Decode(root.Interface()); err != nil {
		return nil, &DecodeError{Wrapped: err}
	}
	return &cfg, nil
}
