package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwsasi/daily-expenses-tracker/internal/cli"
	"github.com/mwsasi/daily-expenses-tracker/internal/ledger"
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show balances, budgets, and category concentration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := nowFunc()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			g := ledger.Overview(state.Transactions, now)

			fmt.Println(cli.FormatTitle("Overview"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Current balance\t%s\n", cli.BoldStyle.Render(money(g.CurrentBalance)))
			fmt.Fprintf(w, "Total savings\t%s\n", cli.SavingsStyle.Render(money(g.TotalSavings)))
			fmt.Fprintf(w, "Total wealth\t%s\n", money(g.TotalWealth()))
			fmt.Fprintf(w, "Opening balance\t%s\n", money(g.OpeningBalance))
			fmt.Fprintf(w, "Today\tincome %s, expenses %s\n",
				cli.SuccessStyle.Render(money(g.TodayIncome)), cli.ErrorStyle.Render(money(g.TodayExpense)))
			fmt.Fprintf(w, "This month\tincome %s, expenses %s, savings %s\n",
				cli.SuccessStyle.Render(money(g.MonthIncome)),
				cli.ErrorStyle.Render(money(g.MonthExpense)),
				cli.SavingsStyle.Render(money(g.MonthSavings)))
			w.Flush()

			printBudgets(state.Budgets, ledger.MonthlySpending(state.Transactions, now))
			printConcentration(state.Transactions, state.CustomCategories, now)
			return nil
		},
	}
}

func printBudgets(caps map[string]float64, spend map[string]float64) {
	statuses := ledger.EvaluateBudgets(caps, spend)
	if len(statuses) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(cli.FormatTitle("Budgets"))
	fmt.Printf("Overall: %.0f%% of combined caps used\n", ledger.MasterProgress(caps, spend))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()
	for _, s := range statuses {
		var tier string
		switch s.Tier {
		case model.TierExceeded:
			tier = cli.ErrorStyle.Render(string(s.Tier))
		case model.TierWarning:
			tier = cli.WarningStyle.Render(string(s.Tier))
		default:
			tier = cli.SuccessStyle.Render(string(s.Tier))
		}
		fmt.Fprintf(w, "%s\t%s / %s\t%s\t%s\n",
			s.Category, money(s.Spent), money(s.Cap), tier, s.Message)
	}
}

func printConcentration(txns []model.Transaction, custom []model.CategoryConfig, now time.Time) {
	monthExpenses := ledger.FilterTransactions(txns,
		ledger.ResolvePreset(ledger.PresetThisMonth, now), model.TypeExpense)
	shares := ledger.Concentration(monthExpenses, custom)
	if len(shares) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(cli.FormatTitle("Spending by category (this month)"))

	var total float64
	for _, s := range shares {
		total += s.Amount
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()
	for _, s := range shares {
		percent := 0.0
		if total > 0 {
			percent = s.Amount / total * 100
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f%%\n", s.Name, money(s.Amount), percent)
	}
}
