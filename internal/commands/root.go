package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendbook-dev/spendbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "spendbook",
		Short:   "Local expense tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "data directory (default $SPENDBOOK_DIR, else the working directory)")

	rootCmd.AddCommand(newInitCommand(&dir))
	rootCmd.AddCommand(newAddCommand(&dir))
	rootCmd.AddCommand(newEditCommand(&dir))
	rootCmd.AddCommand(newDeleteCommand(&dir))
	rootCmd.AddCommand(newListCommand(&dir))
	rootCmd.AddCommand(newSummaryCommand(&dir))
	rootCmd.AddCommand(newExportCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))

	return rootCmd
}
