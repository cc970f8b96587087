package ledger

import (
	"math"
	"sort"
	"time"

	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// DayRow is one date's aggregate in the running-balance ledger.
type DayRow struct {
	Date       string
	ByCategory map[string]float64
	Opening    float64
	Income     float64 // excludes Opening Balance
	Expense    float64
	Savings    float64
	Available  float64 // running balance as of and including this date
}

// PeriodSummary totals a date-range-scoped slice of the ledger.
type PeriodSummary struct {
	Income  float64 // excludes Opening Balance
	Expense float64
	Savings float64
	Net     float64 // Income - Expense
}

// GlobalSummary is the full-history view shown on the overview. It is never
// range-filtered; the Today/Month figures are scoped independently of each
// other against the invocation date.
type GlobalSummary struct {
	CurrentBalance float64 // liquid: income incl. opening - expenses - savings
	OpeningBalance float64
	TotalIncome    float64 // includes Opening Balance
	TotalExpense   float64
	TotalSavings   float64
	TodayIncome    float64
	TodayExpense   float64
	TodaySavings   float64
	MonthIncome    float64
	MonthExpense   float64
	MonthSavings   float64
}

// TotalWealth is the liquid balance plus everything parked in savings.
func (g GlobalSummary) TotalWealth() float64 {
	return g.CurrentBalance + g.TotalSavings
}

// CategoryShare is one category's summed amount within a period, paired
// with its resolved display color.
type CategoryShare struct {
	Name   string
	Amount float64
	Color  string
}

// sanitize coerces non-finite and negative amounts to zero so malformed
// persisted input degrades instead of poisoning every downstream sum.
// Amounts are non-negative by construction; a negative can only arrive via
// a hand-edited document.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// BuildLedger folds the complete transaction history into one row per
// distinct date, ascending, each carrying the running balance as of that
// date. Date filtering must happen after this fold (see FilterRows) so that
// filtering never changes the balance values themselves.
func BuildLedger(txns []model.Transaction) []DayRow {
	byDate := make(map[string]*DayRow)
	for _, t := range txns {
		row, ok := byDate[t.Date]
		if !ok {
			row = &DayRow{Date: t.Date, ByCategory: make(map[string]float64)}
			byDate[t.Date] = row
		}

		amount := sanitize(t.Amount)
		row.ByCategory[t.Category] += amount

		switch {
		case t.IsOpeningBalance():
			row.Opening += amount
		case t.Type == model.TypeIncome:
			row.Income += amount
		case t.Type == model.TypeExpense:
			row.Expense += amount
		case t.Type == model.TypeSavings:
			row.Savings += amount
		}
	}

	rows := make([]DayRow, 0, len(byDate))
	for _, row := range byDate {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	var running float64
	for i := range rows {
		running += rows[i].Opening + rows[i].Income - rows[i].Expense - rows[i].Savings
		rows[i].Available = running
	}
	return rows
}

// FilterRows selects the ledger rows whose date falls in the range,
// preserving each row's full-history running balance.
func FilterRows(rows []DayRow, r Range) []DayRow {
	out := make([]DayRow, 0, len(rows))
	for _, row := range rows {
		if r.Contains(row.Date) {
			out = append(out, row)
		}
	}
	return out
}

// FilterTransactions restricts transactions to a range and an optional type.
// An empty typeFilter keeps all types.
func FilterTransactions(txns []model.Transaction, r Range, typeFilter model.TransactionType) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if !r.Contains(t.Date) {
			continue
		}
		if typeFilter != "" && t.Type != typeFilter {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Summarize totals transactions inside the range. Opening Balance income is
// excluded from the period income figure.
func Summarize(txns []model.Transaction, r Range) PeriodSummary {
	var s PeriodSummary
	for _, t := range txns {
		if !r.Contains(t.Date) {
			continue
		}
		amount := sanitize(t.Amount)
		switch t.Type {
		case model.TypeIncome:
			if !t.IsOpeningBalance() {
				s.Income += amount
			}
		case model.TypeExpense:
			s.Expense += amount
		case model.TypeSavings:
			s.Savings += amount
		}
	}
	s.Net = s.Income - s.Expense
	return s
}

// Overview computes the full-history global summary relative to now.
// A transaction dated today contributes to both the today and month figures.
func Overview(txns []model.Transaction, now time.Time) GlobalSummary {
	today := now.Format(model.DateLayout)
	monthPrefix := now.Format("2006-01")

	var g GlobalSummary
	for _, t := range txns {
		amount := sanitize(t.Amount)
		isToday := t.Date == today
		inMonth := len(t.Date) >= 7 && t.Date[:7] == monthPrefix

		switch t.Type {
		case model.TypeIncome:
			g.TotalIncome += amount
			if t.IsOpeningBalance() {
				g.OpeningBalance += amount
			}
			if isToday {
				g.TodayIncome += amount
			}
			if inMonth {
				g.MonthIncome += amount
			}
		case model.TypeExpense:
			g.TotalExpense += amount
			if isToday {
				g.TodayExpense += amount
			}
			if inMonth {
				g.MonthExpense += amount
			}
		case model.TypeSavings:
			g.TotalSavings += amount
			if isToday {
				g.TodaySavings += amount
			}
			if inMonth {
				g.MonthSavings += amount
			}
		}
	}

	g.CurrentBalance = g.TotalIncome - g.TotalExpense - g.TotalSavings
	return g
}

// Concentration sums amount per category within the given transactions and
// pairs each with its resolved display color, sorted descending by amount.
// Ties break alphabetically so the ordering is deterministic.
func Concentration(txns []model.Transaction, custom []model.CategoryConfig) []CategoryShare {
	totals := make(map[string]float64)
	for _, t := range txns {
		totals[t.Category] += sanitize(t.Amount)
	}

	shares := make([]CategoryShare, 0, len(totals))
	for name, amount := range totals {
		shares = append(shares, CategoryShare{
			Name:   name,
			Amount: amount,
			Color:  ResolveOrFallback(name, custom).Color,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

// MonthlySpending sums expense amounts per category for the calendar month
// containing now. This feeds the budget evaluator.
func MonthlySpending(txns []model.Transaction, now time.Time) map[string]float64 {
	monthPrefix := now.Format("2006-01")
	spend := make(map[string]float64)
	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		if len(t.Date) < 7 || t.Date[:7] != monthPrefix {
			continue
		}
		spend[t.Category] += sanitize(t.Amount)
	}
	return spend
}
