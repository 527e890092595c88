package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendbook-dev/spendbook/internal/store"
)

func newDeleteCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.store.Delete(args[0]); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no expense with id %s", args[0])
				}
				return err
			}

			e.recordMutation("delete", args[0], "")
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
