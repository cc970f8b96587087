package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwsasi/daily-expenses-tracker/internal/cli"
	"github.com/mwsasi/daily-expenses-tracker/internal/common"
	"github.com/mwsasi/daily-expenses-tracker/internal/insights"
)

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Get AI-generated spending insights",
		Long: `Send a snapshot of your ledger to the configured AI provider and print
its advice. The result is purely advisory; nothing in the ledger changes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := insights.NewClient(insights.Config{
				Provider:    viper.GetString("insights.provider"),
				APIKey:      viper.GetString("insights.api_key"),
				Model:       viper.GetString("insights.model"),
				Temperature: viper.GetFloat64("insights.temperature"),
				MaxTokens:   viper.GetInt("insights.max_tokens"),
			})
			if err != nil && !errors.Is(err, common.ErrMissingCredential) {
				return err
			}
			// A missing credential degrades to an explanatory message.

			advisor := insights.NewAdvisor(client, viper.GetDuration("insights.cooldown"), nil)
			result := advisor.Request(ctx, state.Transactions, state.CustomCategories)

			if result.CooldownRemaining > 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf(
					"Insights were requested recently. Try again in %s.",
					result.CooldownRemaining.Round(time.Second))))
				return nil
			}

			fmt.Println(cli.FormatTitle("Insights"))
			fmt.Println(result.Advice)
			return nil
		},
	}
}
