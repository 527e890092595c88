package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCommand(dir *string) *cobra.Command {
	var flags expenseFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace the fields of an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			defer e.close()

			existing, ok := e.store.Get(args[0])
			if !ok {
				return fmt.Errorf("no expense with id %s", args[0])
			}

			// Flags left unset keep the stored value.
			if !cmd.Flags().Changed("description") {
				flags.description = existing.Description
			}
			if !cmd.Flags().Changed("amount") {
				flags.amount = existing.Amount.StringFixed(2)
			}
			if !cmd.Flags().Changed("category") {
				flags.category = existing.Category
			}
			if !cmd.Flags().Changed("date") {
				flags.date = existing.Date.Format(flagDateFormat)
			}
			if !cmd.Flags().Changed("note") {
				flags.note = existing.Note
			}
			if !cmd.Flags().Changed("recurring") {
				flags.recurring = string(existing.Recurring)
			}

			params, err := flags.params()
			if err != nil {
				return err
			}

			exp, err := e.store.UpdateDeferred(existing.ID, params).Wait()
			if err != nil {
				return err
			}

			e.recordMutation("update", exp.ID, exp.Description)
			fmt.Printf("Updated %s %s (%s)\n", exp.Description, money(exp.Amount), exp.ID)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
