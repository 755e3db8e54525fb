package app

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func NewValidateCmd(mgr Manager) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a lattice parameter file",
		Args:  cobra.ExactArgs(1),
		Example: `
VALIDATE A PARAMETER FILE
  ltx validate parameters.yaml

MACHINE-READABLE OUTPUT
  ltx validate parameters.yaml -o json

RE-VALIDATE ON EVERY SAVE
  ltx validate parameters.yaml --watch`,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show offending values alongside diagnostics")
	outputVal := formatValue("text")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")
	var watch bool
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch the file and revalidate on change")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		noColour, _ := cmd.Flags().GetBool("nocolour")
		useColour := !noColour

		if watch {
			err := mgr.WatchValidation(cmd.Context(), args[0], string(outputVal), verbose, useColour, nil)
			if errors.Is(err, context.Canceled) {
				// Interruption is how a watch session normally ends.
				return nil
			}
			return err
		}
		return mgr.ValidateDocument(cmd.Context(), args[0], string(outputVal), verbose, useColour)
	}

	return cmd
}
