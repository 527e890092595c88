package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendbook-dev/spendbook/internal/view"
)

func newSummaryCommand(dir *string) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and the per-category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := flags.filter()
			if err != nil {
				return err
			}

			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			defer e.close()

			expenses := view.ApplyFilter(e.store.List(), filter)
			s := view.Summarize(expenses)

			fmt.Printf("Total:      %s\n", money(s.Total))
			fmt.Printf("Entries:    %d\n", s.Count)
			fmt.Printf("Categories: %d\n", s.Categories)

			totals := view.SortByTotal(view.CategoryTotals(expenses))
			if len(totals) == 0 {
				return nil
			}

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			for _, ct := range totals {
				fmt.Fprintf(w, "%s\t%s\n", ct.Category, money(ct.Total))
			}
			return w.Flush()
		},
	}

	flags.register(cmd)

	return cmd
}
