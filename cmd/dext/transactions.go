package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwsasi/daily-expenses-tracker/internal/cli"
	"github.com/mwsasi/daily-expenses-tracker/internal/ledger"
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// transactionFlags collects the shared add/edit flag set.
type transactionFlags struct {
	txType   string
	category string
	amount   float64
	note     string
	account  string
	date     string
}

func (f *transactionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.txType, "type", "EXPENSE", "transaction type (INCOME, EXPENSE, SAVINGS)")
	cmd.Flags().StringVar(&f.category, "category", "", "category name")
	cmd.Flags().Float64Var(&f.amount, "amount", 0, "amount (non-negative)")
	cmd.Flags().StringVar(&f.note, "note", "", "free-text memo")
	cmd.Flags().StringVar(&f.account, "account", "", "bank/wallet label (savings only)")
	cmd.Flags().StringVar(&f.date, "date", "", "calendar date YYYY-MM-DD (default: today)")
}

func (f *transactionFlags) validate() (model.Transaction, error) {
	txType := model.TransactionType(strings.ToUpper(strings.TrimSpace(f.txType)))
	if !txType.Valid() {
		return model.Transaction{}, fmt.Errorf("invalid transaction type %q (want INCOME, EXPENSE, or SAVINGS)", f.txType)
	}
	if f.amount < 0 {
		return model.Transaction{}, fmt.Errorf("amount must be non-negative, got %v", f.amount)
	}

	date := f.date
	if date == "" {
		date = nowFunc().Format(model.DateLayout)
	} else if _, err := time.Parse(model.DateLayout, date); err != nil {
		return model.Transaction{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", f.date, err)
	}

	category := strings.TrimSpace(f.category)
	if category == "" {
		category = model.DefaultCategoryFor(txType)
	}

	return model.Transaction{
		Date:     date,
		Type:     txType,
		Category: category,
		Amount:   f.amount,
		Note:     f.note,
		Account:  f.account,
	}, nil
}

func addCmd() *cobra.Command {
	var flags transactionFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long:  `Record an income, expense, or savings transaction in the ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			txn, err := flags.validate()
			if err != nil {
				return err
			}

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			// An unknown category still records; display falls back to the
			// catch-all config.
			if _, ok := ledger.Resolve(txn.Category, state.CustomCategories); !ok {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("category %q is not configured; it will display as %q", txn.Category, ledger.Unclassified.Name)))
			}

			txn = state.AddTransaction(txn)
			if err := store.SaveTransactions(ctx, state.Transactions); err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}
			if txn.Type == model.TypeSavings && txn.Account != "" {
				state.AddAccount(txn.Account)
				if err := store.SaveAccounts(ctx, state.AccountList); err != nil {
					return fmt.Errorf("failed to save accounts: %w", err)
				}
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s in %q (%s)",
				strings.ToLower(string(txn.Type)), money(txn.Amount), txn.Category, txn.ID)))
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func editCmd() *cobra.Command {
	var flags transactionFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			existing, err := state.FindTransaction(args[0])
			if err != nil {
				return err
			}

			// Only explicitly set flags override existing values.
			if !cmd.Flags().Changed("type") {
				flags.txType = string(existing.Type)
			}
			if !cmd.Flags().Changed("category") {
				flags.category = existing.Category
			}
			if !cmd.Flags().Changed("amount") {
				flags.amount = existing.Amount
			}
			if !cmd.Flags().Changed("note") {
				flags.note = existing.Note
			}
			if !cmd.Flags().Changed("account") {
				flags.account = existing.Account
			}
			if !cmd.Flags().Changed("date") {
				flags.date = existing.Date
			}

			updated, err := flags.validate()
			if err != nil {
				return err
			}
			updated.ID = existing.ID

			if err := state.UpdateTransaction(updated); err != nil {
				return err
			}
			if err := store.SaveTransactions(ctx, state.Transactions); err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Updated transaction " + updated.ID))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := state.FindTransaction(args[0])
			if err != nil {
				return err
			}

			if !force {
				prompt := fmt.Sprintf("Delete %s %s in %q dated %s?",
					strings.ToLower(string(txn.Type)), money(txn.Amount), txn.Category, txn.Date)
				if !cli.Confirm(os.Stdout, os.Stdin, prompt) {
					fmt.Println("Deletion cancelled.")
					return nil
				}
			}

			if err := state.DeleteTransaction(txn.ID); err != nil {
				return err
			}
			if err := store.SaveTransactions(ctx, state.Transactions); err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Deleted transaction " + txn.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")
	return cmd
}
