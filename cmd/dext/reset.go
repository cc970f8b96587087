package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwsasi/daily-expenses-tracker/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all recorded data",
		Long:  `Delete every transaction, budget, custom category, and account label.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !force {
				if !cli.Confirm(os.Stdout, os.Stdin, "This permanently deletes ALL data. Continue?") {
					fmt.Println("Reset cancelled.")
					return nil
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Reset(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("All data deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")
	return cmd
}
