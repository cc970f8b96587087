package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mwsasi/daily-expenses-tracker/internal/cli"
	"github.com/mwsasi/daily-expenses-tracker/internal/ledger"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly budget caps",
		Long: `Set, remove, and review per-category monthly budget caps. Caps are always
compared against the current calendar month's spend.`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(removeBudgetCmd())
	cmd.AddCommand(budgetStatusCmd())
	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <cap>",
		Short: "Set a monthly cap for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cap, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid cap amount %q: %w", args[1], err)
			}
			if cap <= 0 {
				return fmt.Errorf("cap must be positive; use 'budget remove' to clear one")
			}

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if _, ok := ledger.Resolve(args[0], state.CustomCategories); !ok {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("category %q is not configured; the cap applies to that exact name", args[0])))
			}

			state.SetBudget(args[0], cap)
			if err := store.SaveBudgets(ctx, state.Budgets); err != nil {
				return fmt.Errorf("failed to save budgets: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %q set to %s per month", args[0], money(cap))))
			return nil
		},
	}
}

func removeBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category>",
		Short: "Remove a category's monthly cap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			state.SetBudget(args[0], 0)
			if err := store.SaveBudgets(ctx, state.Budgets); err != nil {
				return fmt.Errorf("failed to save budgets: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed budget for %q", args[0])))
			return nil
		},
	}
}

func budgetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show budget consumption for the current month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			spend := ledger.MonthlySpending(state.Transactions, nowFunc())
			statuses := ledger.EvaluateBudgets(state.Budgets, spend)
			if len(statuses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No budgets configured. Use 'dext budget set' to create one."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Budget status"))
			fmt.Printf("Overall: %.0f%% of combined caps used\n\n", ledger.MasterProgress(state.Budgets, spend))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "CATEGORY\tSPENT\tCAP\tUSED\tSTATUS")
			for _, s := range statuses {
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.0f%%\t%s\n", s.Category, s.Spent, s.Cap, s.Percent, s.Message)
			}
			return nil
		},
	}
}
