package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwsasi/daily-expenses-tracker/internal/cli"
	"github.com/mwsasi/daily-expenses-tracker/internal/config"
	"github.com/mwsasi/daily-expenses-tracker/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		format      string
		rangePreset string
		fromDate    string
		toDate      string
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a report file",
		Long: `Export the selected period as a downloadable report: a two-sheet
spreadsheet (.xls, legacy spreadsheet markup) or a one-page PDF summary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := nowFunc()

			r, err := resolveRangeFlags(rangePreset, fromDate, toDate)
			if err != nil {
				return err
			}

			store, state, err := openState(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			report := export.Build(state.Transactions, r, now, currencySymbol())

			var (
				data []byte
				name string
			)
			switch format {
			case "xls":
				data = export.Spreadsheet(report)
				name = export.Filename(r, "xls")
			case "pdf":
				fontPath := config.ExpandPath(viper.GetString("export.font"))
				if fontPath == "" {
					fontPath = export.DefaultFontPath()
				}
				data, err = export.PDF(report, fontPath)
				if err != nil {
					return fmt.Errorf("failed to render PDF: %w", err)
				}
				name = export.Filename(r, "pdf")
			default:
				return fmt.Errorf("unknown export format %q (want xls or pdf)", format)
			}

			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Wrote %s (%d bytes)", path, len(data))))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "xls", "export format (xls, pdf)")
	cmd.Flags().StringVar(&rangePreset, "range", "thisMonth", "date range preset")
	cmd.Flags().StringVar(&fromDate, "from", "", "custom range start YYYY-MM-DD")
	cmd.Flags().StringVar(&toDate, "to", "", "custom range end YYYY-MM-DD")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}
