package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCommand(dir *string) *cobra.Command {
	var flags expenseFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.params()
			if err != nil {
				return err
			}

			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			defer e.close()

			exp, err := e.store.CreateDeferred(params).Wait()
			if err != nil {
				return err
			}

			e.recordMutation("create", exp.ID, exp.Description)
			fmt.Printf("Added %s %s (%s)\n", exp.Description, money(exp.Amount), exp.ID)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
