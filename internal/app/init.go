package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewInitCmd(mgr Manager) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   InitCmdName + " [path]",
		Short: "Write the built-in default parameter file",
		Args:  cobra.MaximumNArgs(1),
		Example: `
CREATE parameters.yaml IN THE CURRENT DIRECTORY
  ltx init

CREATE A NAMED FILE
  ltx init my-diagram.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "parameters.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := mgr.WriteDefaultConfig(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
