package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendbook-dev/spendbook/internal/importer"
)

func newImportCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-load expenses from a CSV in the export format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			params, err := importer.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			defer e.close()

			// Imports bypass the submission delay; each row is created
			// directly, newest ending up first like interactive creates.
			for i, p := range params {
				exp, err := e.store.Create(p)
				if err != nil {
					return fmt.Errorf("row %d: %w", i+2, err)
				}
				e.recordMutation("import", exp.ID, filepath.Base(args[0]))
			}

			fmt.Printf("Imported %d expense(s) from %s\n", len(params), args[0])
			return nil
		},
	}
}
