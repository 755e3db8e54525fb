package app

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AndresGarciaEscovar/latexlattices/internal/render"
)

// Version is the current version of ltx, set at build time.
var Version = "dev"

const InitCmdName = "init"

// Banner with colour codes.
var Banner = "\033[32m" + `
    __  ________  __
   / / /_  __/ |/ /
  / /   / /  |   /
 / /___/ /  /   |
/_____/_/  /_/|_|
` + "\033[0m"

var LongDescription = `
ltx validates lattice diagram parameter files and renders them as standalone
LaTeX/TikZ documents. Parameter files are YAML; anything left out falls back
to the built-in defaults, and everything is checked before a single line of
TikZ is emitted.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer) *cobra.Command {
	var debug bool
	var noColour bool

	rootCmd := &cobra.Command{
		Use:           "ltx",
		Short:         "A tool for validating and rendering lattice diagram configurations",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          Banner + "\n" + LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help and completion commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if debug {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			if debug {
				ll.Set(slog.LevelDebug)
			}

			logger, _, err := setupLogger(stderr, ll)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			lazy.SetInner(NewCLIManager(logger, render.New()))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	// Subcommands
	rootCmd.AddCommand(NewValidateCmd(lazy))
	rootCmd.AddCommand(NewRenderCmd(lazy))
	rootCmd.AddCommand(NewFixturesCmd(lazy))
	rootCmd.AddCommand(NewInitCmd(lazy))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
