// Package export renders the ledger's period view into downloadable report
// files. Both exporters are pure functions of a Report snapshot; they do no
// I/O of their own.
package export

import (
	"strings"
	"time"

	"github.com/mwsasi/daily-expenses-tracker/internal/ledger"
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// SpreadsheetMIMEType is the content type the spreadsheet export is served
// with. The output is legacy spreadsheet markup, not a binary workbook.
const SpreadsheetMIMEType = "text/xml"

// Report is the full input snapshot both exporters consume.
type Report struct {
	GeneratedAt  time.Time
	Range        ledger.Range
	Transactions []model.Transaction // period-filtered
	Rows         []ledger.DayRow     // full-history rows restricted to the range
	Period       ledger.PeriodSummary
	Global       ledger.GlobalSummary
	Currency     string
}

// Build assembles a Report from the raw transaction history. The running
// balance is always computed over full history before the range filter is
// applied, so filtering never changes the balance values.
func Build(txns []model.Transaction, r ledger.Range, now time.Time, currency string) Report {
	rows := ledger.BuildLedger(txns)
	return Report{
		GeneratedAt:  now,
		Range:        r,
		Transactions: ledger.FilterTransactions(txns, r, ""),
		Rows:         ledger.FilterRows(rows, r),
		Period:       ledger.Summarize(txns, r),
		Global:       ledger.Overview(txns, now),
		Currency:     currency,
	}
}

// Filename builds the download name for a report, embedding the resolved
// range bounds with punctuation normalized to underscores.
func Filename(r ledger.Range, ext string) string {
	start := r.Start
	if start == "" {
		start = "beginning"
	}
	end := r.End
	if end == "" {
		end = "present"
	}
	name := "expense_report_" + start + "_to_" + end
	name = strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return c
		default:
			return '_'
		}
	}, name)
	return name + "." + strings.TrimPrefix(ext, ".")
}
