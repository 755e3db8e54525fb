package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func NewRenderCmd(mgr Manager) *cobra.Command {
	outPath := pathValue("")

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a lattice parameter file to a LaTeX document",
		Args:  cobra.ExactArgs(1),
		Example: `
RENDER TO STDOUT
  ltx render parameters.yaml

RENDER TO A FILE
  ltx render parameters.yaml -o diagram.tex`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := mgr.RenderDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			if err := os.WriteFile(string(outPath), doc, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().VarP(&outPath, "output", "o", "Write the document to a file instead of stdout")
	return cmd
}
