package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mwsasi/daily-expenses-tracker/internal/cli"
	"github.com/mwsasi/daily-expenses-tracker/internal/ledger"
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long:  `List, add, rename, and delete the categories transactions are tagged with.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(renameCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintln(w, "NAME\tTYPE\tICON\tCOLOR\tCUSTOM")
			for _, cfg := range ledger.AllCategories(state.CustomCategories) {
				custom := ""
				if cfg.IsCustom {
					custom = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					cfg.Name, strings.ToLower(string(cfg.Type)), cfg.IconName, cfg.Color, custom)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		categoryType string
		iconName     string
		color        string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ctype := model.TransactionType(strings.ToUpper(categoryType))
			if !ctype.Valid() {
				return fmt.Errorf("invalid category type %q (want INCOME, EXPENSE, or SAVINGS)", categoryType)
			}

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cfg, err := state.AddCategory(args[0], iconName, color, ctype)
			if err != nil {
				return err
			}
			if err := store.SaveCategories(ctx, state.CustomCategories); err != nil {
				return fmt.Errorf("failed to save categories: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (%s)", cfg.Name, strings.ToLower(string(cfg.Type)))))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "EXPENSE", "category type (INCOME, EXPENSE, SAVINGS)")
	cmd.Flags().StringVar(&iconName, "icon", "tag", "icon name")
	cmd.Flags().StringVar(&color, "color", "#94A3B8", "display color")
	return cmd
}

func renameCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old-name> <new-name>",
		Short: "Rename a custom category",
		Long: `Rename a custom category. Every transaction tagged with the old name is
rewritten to the new name, and any budget cap moves with it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := state.RenameCategory(args[0], args[1]); err != nil {
				return err
			}
			if err := store.SaveState(ctx, state); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Renamed category %q to %q", args[0], args[1])))
			return nil
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a custom category",
		Long: `Delete a custom category. Transactions tagged with it are reassigned to
the type-appropriate default category, not deleted. Any budget cap for the
category is removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if !force {
				prompt := fmt.Sprintf("Delete category %q? Its transactions will be reassigned to a default category.", name)
				if !cli.Confirm(os.Stdout, os.Stdin, prompt) {
					fmt.Println("Deletion cancelled.")
					return nil
				}
			}

			reassigned, err := state.DeleteCategory(name)
			if err != nil {
				return err
			}
			if err := store.SaveState(ctx, state); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %q (%d transaction(s) reassigned)", name, reassigned)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")
	return cmd
}
