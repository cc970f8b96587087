package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mwsasi/daily-expenses-tracker/internal/cli"
	"github.com/mwsasi/daily-expenses-tracker/internal/ledger"
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

func listCmd() *cobra.Command {
	var (
		rangePreset string
		fromDate    string
		toDate      string
		typeFilter  string
		showLedger  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions or the running-balance ledger",
		Long: `List transactions in a date range, or with --ledger show the day-by-day
running balance. Balances always reflect full history; the range only
selects which rows are shown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			r, err := resolveRangeFlags(rangePreset, fromDate, toDate)
			if err != nil {
				return err
			}

			var tf model.TransactionType
			if typeFilter != "" {
				tf = model.TransactionType(strings.ToUpper(typeFilter))
				if !tf.Valid() {
					return fmt.Errorf("invalid type filter %q", typeFilter)
				}
			}

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Println(cli.FormatTitle("Ledger " + r.Label()))

			if showLedger {
				rows := ledger.FilterRows(ledger.BuildLedger(state.Transactions), r)
				if len(rows) == 0 {
					fmt.Println(cli.SubtleStyle.Render("No entries in this range."))
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				defer w.Flush()

				fmt.Fprintln(w, "DATE\tINCOME\tEXPENSE\tSAVINGS\tAVAILABLE")
				for _, row := range rows {
					fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
						row.Date, row.Opening+row.Income, row.Expense, row.Savings, row.Available)
				}
				return nil
			}

			txns := ledger.FilterTransactions(state.Transactions, r, tf)
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions in this range."))
				return nil
			}
			sort.SliceStable(txns, func(i, j int) bool { return txns[i].Date < txns[j].Date })

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "DATE\tTYPE\tCATEGORY\tAMOUNT\tACCOUNT\tNOTE\tID")
			for _, t := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
					t.Date, t.Type, t.Category, t.Amount, t.Account, t.Note, t.ID)
			}

			s := ledger.Summarize(txns, r)
			fmt.Fprintf(w, "\t\t\t\t\t\t\n")
			fmt.Fprintf(w, "TOTAL\tincome %.2f\texpense %.2f\tsavings %.2f\tnet %.2f\t\t\n",
				s.Income, s.Expense, s.Savings, s.Net)
			return nil
		},
	}

	cmd.Flags().StringVar(&rangePreset, "range", "thisMonth", "date range preset (today, yesterday, last7, thisMonth, lastMonth, thisYear, all)")
	cmd.Flags().StringVar(&fromDate, "from", "", "custom range start YYYY-MM-DD")
	cmd.Flags().StringVar(&toDate, "to", "", "custom range end YYYY-MM-DD")
	cmd.Flags().StringVar(&typeFilter, "type", "", "filter by type (INCOME, EXPENSE, SAVINGS)")
	cmd.Flags().BoolVar(&showLedger, "ledger", false, "show the day-by-day running balance instead of raw transactions")
	return cmd
}
