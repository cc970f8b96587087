package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwsasi/daily-expenses-tracker/internal/cli"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage savings account labels",
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known accounts",
		Long: `List every known account: the explicitly added labels plus any account
name appearing on a savings transaction.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			accounts := state.Accounts()
			if len(accounts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No accounts yet. Use 'dext accounts add' or record a savings transaction."))
				return nil
			}
			for _, name := range accounts {
				fmt.Printf("%s %s\n", cli.BankIcon, name)
			}
			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			name := state.AddAccount(args[0])
			if name == "" {
				return fmt.Errorf("account name cannot be empty")
			}
			if err := store.SaveAccounts(ctx, state.AccountList); err != nil {
				return fmt.Errorf("failed to save accounts: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Added account " + name))
			return nil
		},
	}
}
