// Package cli wires the listing core to the terminal: argument
// parsing, render mode selection, and table/JSON output.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// Options configures a single listing invocation.
type Options struct {
	// Path is the directory to list.
	Path string
	// JSON selects JSON output instead of the table.
	JSON bool
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// NewRootCommand builds the root command for the lst CLI.
func NewRootCommand(version string) *cobra.Command {
	var options Options

	cmd := &cobra.Command{
		Use:     "lst [path]",
		Short:   "List directory contents with sizes and modification dates",
		Version: version,
		Long: heredoc.Doc(`
			lst lists the contents of a directory with one row per entry:
			name, type, human-readable size, and last modification date.

			Directory sizes are computed recursively without following
			symlinks, so link cycles cannot cause infinite traversal.
			Unreadable entries are skipped rather than failing the listing.

			Defaults to the current directory if no path is given.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			options.Path = "."
			if len(args) > 0 {
				options.Path = args[0]
			}

			return logic(options)
		},
	}

	cmd.Flags().BoolVarP(&options.JSON, "json", "j", false, "Output the listing as a JSON array")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")
	cmd.Flags().SortFlags = false

	return cmd
}

// Execute runs the CLI with the provided version string.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}
