package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendbook-dev/spendbook/internal/export"
)

func newExportCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the full collection as CSV (stdout when no file given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			defer e.close()

			expenses := e.store.List()

			if len(args) == 0 {
				return export.WriteCSV(os.Stdout, expenses)
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}
			defer f.Close()

			if err := export.WriteCSV(f, expenses); err != nil {
				return fmt.Errorf("exporting to %s: %w", args[0], err)
			}
			fmt.Printf("Exported %d expense(s) to %s\n", len(expenses), args[0])
			return nil
		},
	}
}
