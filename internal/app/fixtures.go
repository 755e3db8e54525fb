package app

import (
	"github.com/spf13/cobra"
)

func NewFixturesCmd(mgr Manager) *cobra.Command {
	var verbose bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "fixtures <manifest>",
		Short: "Run a fixture manifest against the validation engine",
		Long: `
A fixture manifest carries one known-good parameter document plus a list of
substitutions that must each make validation fail. Use it to pin down the
engine's behaviour over a curated corpus.`,
		Args: cobra.ExactArgs(1),
		Example: `
RUN A MANIFEST
  ltx fixtures fixtures.yaml

RUN WITH A FIXED WORKER COUNT
  ltx fixtures fixtures.yaml --jobs 4`,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show passing cases as well as failures")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of parallel workers (0 = one per CPU)")
	outputVal := formatValue("text")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		noColour, _ := cmd.Flags().GetBool("nocolour")
		return mgr.RunFixtures(cmd.Context(), args[0], jobs, string(outputVal), verbose, !noColour)
	}

	return cmd
}
