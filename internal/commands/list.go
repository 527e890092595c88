package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendbook-dev/spendbook/internal/view"
)

// filterFlags are the predicate flags shared by list and summary.
type filterFlags struct {
	search   string
	category string
	from     string
	to       string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "substring match on description (case-insensitive)")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "exact category match")
	cmd.Flags().StringVar(&f.from, "from", "", "earliest date as YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&f.to, "to", "", "latest date as YYYY-MM-DD (inclusive)")
}

func (f *filterFlags) filter() (view.Filter, error) {
	out := view.Filter{Search: f.search, Category: f.category}

	var err error
	if f.from != "" {
		out.From, err = time.Parse(flagDateFormat, f.from)
		if err != nil {
			return view.Filter{}, fmt.Errorf("parsing --from %q: %w", f.from, err)
		}
	}
	if f.to != "" {
		out.To, err = time.Parse(flagDateFormat, f.to)
		if err != nil {
			return view.Filter{}, fmt.Errorf("parsing --to %q: %w", f.to, err)
		}
	}
	return out, nil
}

func newListCommand(dir *string) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, optionally filtered",
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
			if len(expenses) == 0 {
				if e.store.Len() == 0 {
					fmt.Println("No expenses yet. Add your first with 'spendbook add'.")
				} else {
					fmt.Println("No expenses match the filters.")
				}
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tAMOUNT\tNOTE\tRECURRING\tID")
			for _, exp := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					exp.Date.Format(flagDateFormat), exp.Description, exp.Category,
					money(exp.Amount), exp.Note, exp.Recurring.Label(), exp.ID)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			s := view.Summarize(expenses)
			fmt.Printf("\n%d expense(s), %d categorie(s), total %s\n", s.Count, s.Categories, money(s.Total))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
