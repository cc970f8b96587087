package ledger

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

func txn(date string, ttype model.TransactionType, category string, amount float64) model.Transaction {
	return model.Transaction{Date: date, Type: ttype, Category: category, Amount: amount}
}

func TestBuildLedger_RunningBalance(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01", model.TypeIncome, model.OpeningBalanceCategory, 500),
		txn("2024-01-02", model.TypeExpense, "Food", 100),
	}

	rows := BuildLedger(txns)
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.InDelta(t, 500, rows[0].Available, 1e-9)
	assert.InDelta(t, 500, rows[0].Opening, 1e-9)
	assert.InDelta(t, 0, rows[0].Income, 1e-9, "opening balance is not period income")

	assert.Equal(t, "2024-01-02", rows[1].Date)
	assert.InDelta(t, 400, rows[1].Available, 1e-9)
	assert.InDelta(t, 100, rows[1].ByCategory["Food"], 1e-9)
}

func TestBuildLedger_GroupsAndSortsDates(t *testing.T) {
	// Deliberately out of order, with two transactions on the same date.
	txns := []model.Transaction{
		txn("2024-02-03", model.TypeExpense, "Food", 30),
		txn("2024-02-01", model.TypeIncome, model.DefaultIncomeCategory, 1000),
		txn("2024-02-03", model.TypeExpense, "Transport", 20),
		txn("2024-02-02", model.TypeSavings, model.DefaultSavingsCategory, 200),
	}

	rows := BuildLedger(txns)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2024-02-01", "2024-02-02", "2024-02-03"},
		[]string{rows[0].Date, rows[1].Date, rows[2].Date})

	assert.InDelta(t, 1000, rows[0].Available, 1e-9)
	assert.InDelta(t, 800, rows[1].Available, 1e-9)
	assert.InDelta(t, 750, rows[2].Available, 1e-9)
	assert.InDelta(t, 30, rows[2].ByCategory["Food"], 1e-9)
	assert.InDelta(t, 20, rows[2].ByCategory["Transport"], 1e-9)
}

func TestFilterRows_PreservesBalances(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-01-01", model.TypeIncome, model.OpeningBalanceCategory, 500),
		txn("2024-01-15", model.TypeExpense, "Food", 100),
		txn("2024-02-10", model.TypeExpense, "Food", 50),
	}

	rows := BuildLedger(txns)
	filtered := FilterRows(rows, Range{Start: "2024-02-01", End: "2024-02-29"})

	// Filtering selects rows but never recomputes the running balance.
	require.Len(t, filtered, 1)
	assert.Equal(t, "2024-02-10", filtered[0].Date)
	assert.InDelta(t, 350, filtered[0].Available, 1e-9)
}

func TestOverview_CurrentBalance(t *testing.T) {
	now := mustDate(t, "2024-03-15")
	txns := []model.Transaction{
		txn("2024-01-01", model.TypeIncome, model.OpeningBalanceCategory, 500),
		txn("2024-02-01", model.TypeIncome, model.DefaultIncomeCategory, 1000),
		txn("2024-02-05", model.TypeExpense, "Food", 300),
		txn("2024-02-06", model.TypeSavings, model.DefaultSavingsCategory, 200),
	}

	g := Overview(txns, now)
	assert.InDelta(t, 1000, g.CurrentBalance, 1e-9) // 1500 - 300 - 200
	assert.InDelta(t, 500, g.OpeningBalance, 1e-9)
	assert.InDelta(t, 1500, g.TotalIncome, 1e-9, "cumulative income includes opening balance")
	assert.InDelta(t, 300, g.TotalExpense, 1e-9)
	assert.InDelta(t, 200, g.TotalSavings, 1e-9)
	assert.InDelta(t, 1200, g.TotalWealth(), 1e-9)
}

func TestOverview_InvariantUnderReordering(t *testing.T) {
	now := mustDate(t, "2024-03-15")
	txns := []model.Transaction{
		txn("2024-01-01", model.TypeIncome, model.OpeningBalanceCategory, 500),
		txn("2024-01-02", model.TypeIncome, model.DefaultIncomeCategory, 750.25),
		txn("2024-01-03", model.TypeExpense, "Food", 120.75),
		txn("2024-01-04", model.TypeExpense, "Transport", 80),
		txn("2024-01-05", model.TypeSavings, model.DefaultSavingsCategory, 300),
	}

	want := Overview(txns, now).CurrentBalance

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]model.Transaction, len(txns))
		copy(shuffled, txns)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.InDelta(t, want, Overview(shuffled, now).CurrentBalance, 1e-9)
	}
}

func TestOverview_ReconcilesWithLedger(t *testing.T) {
	now := mustDate(t, "2024-03-15")
	txns := []model.Transaction{
		txn("2024-01-01", model.TypeIncome, model.OpeningBalanceCategory, 500),
		txn("2024-01-10", model.TypeIncome, model.DefaultIncomeCategory, 1000),
		txn("2024-02-01", model.TypeExpense, "Food", 250),
		txn("2024-02-02", model.TypeSavings, model.DefaultSavingsCategory, 150),
	}

	rows := BuildLedger(txns)
	require.NotEmpty(t, rows)
	last := rows[len(rows)-1]

	// Both aggregation paths subtract savings, so the unfiltered ledger's
	// final running balance is exactly the liquid balance; adding back
	// TotalSavings yields total wealth.
	g := Overview(txns, now)
	assert.InDelta(t, g.CurrentBalance, last.Available, 1e-9)
	assert.InDelta(t, g.TotalWealth(), last.Available+g.TotalSavings, 1e-9)
}

func TestOverview_TodayAndMonthScoping(t *testing.T) {
	now := mustDate(t, "2024-03-15")
	txns := []model.Transaction{
		txn("2024-03-15", model.TypeIncome, model.DefaultIncomeCategory, 100),
		txn("2024-03-15", model.TypeExpense, "Food", 40),
		txn("2024-03-01", model.TypeExpense, "Rent", 500),
		txn("2024-02-15", model.TypeExpense, "Food", 999), // prior month, same day-of-month
	}

	g := Overview(txns, now)

	// A transaction dated today contributes to both today and month figures.
	assert.InDelta(t, 100, g.TodayIncome, 1e-9)
	assert.InDelta(t, 40, g.TodayExpense, 1e-9)
	assert.InDelta(t, 100, g.MonthIncome, 1e-9)
	assert.InDelta(t, 540, g.MonthExpense, 1e-9)
}

func TestSummarize(t *testing.T) {
	r := Range{Start: "2024-03-01", End: "2024-03-31"}
	txns := []model.Transaction{
		txn("2024-03-01", model.TypeIncome, model.OpeningBalanceCategory, 500),
		txn("2024-03-02", model.TypeIncome, model.DefaultIncomeCategory, 1000),
		txn("2024-03-03", model.TypeExpense, "Food", 300),
		txn("2024-03-04", model.TypeSavings, model.DefaultSavingsCategory, 100),
		txn("2024-04-01", model.TypeExpense, "Food", 999), // outside range
	}

	s := Summarize(txns, r)
	assert.InDelta(t, 1000, s.Income, 1e-9, "period income excludes opening balance")
	assert.InDelta(t, 300, s.Expense, 1e-9)
	assert.InDelta(t, 100, s.Savings, 1e-9)
	assert.InDelta(t, 700, s.Net, 1e-9)
}

func TestFilterTransactions_TypeFilter(t *testing.T) {
	r := Range{Start: "2024-03-01", End: "2024-03-31"}
	txns := []model.Transaction{
		txn("2024-03-02", model.TypeIncome, model.DefaultIncomeCategory, 1000),
		txn("2024-03-03", model.TypeExpense, "Food", 300),
	}

	onlyExpenses := FilterTransactions(txns, r, model.TypeExpense)
	require.Len(t, onlyExpenses, 1)
	assert.Equal(t, "Food", onlyExpenses[0].Category)

	all := FilterTransactions(txns, r, "")
	assert.Len(t, all, 2)
}

func TestConcentration(t *testing.T) {
	custom := []model.CategoryConfig{
		{ID: "c1", Name: "Coffee", Color: "#6F4E37", Type: model.TypeExpense, IsCustom: true},
	}
	txns := []model.Transaction{
		txn("2024-03-01", model.TypeExpense, "Food", 100),
		txn("2024-03-02", model.TypeExpense, "Coffee", 250),
		txn("2024-03-03", model.TypeExpense, "Food", 50),
		txn("2024-03-04", model.TypeExpense, "Mystery", 10),
	}

	shares := Concentration(txns, custom)
	require.Len(t, shares, 3)

	assert.Equal(t, "Coffee", shares[0].Name)
	assert.InDelta(t, 250, shares[0].Amount, 1e-9)
	assert.Equal(t, "#6F4E37", shares[0].Color)

	assert.Equal(t, "Food", shares[1].Name)
	assert.InDelta(t, 150, shares[1].Amount, 1e-9)

	// Unknown categories fall back to the sentinel's color.
	assert.Equal(t, "Mystery", shares[2].Name)
	assert.Equal(t, Unclassified.Color, shares[2].Color)
}

func TestMonthlySpending(t *testing.T) {
	now := mustDate(t, "2024-03-15")
	txns := []model.Transaction{
		txn("2024-03-01", model.TypeExpense, "Food", 100),
		txn("2024-03-20", model.TypeExpense, "Food", 50),
		txn("2024-02-28", model.TypeExpense, "Food", 999),    // prior month
		txn("2024-03-10", model.TypeIncome, "Daily Income", 400), // not an expense
	}

	spend := MonthlySpending(txns, now)
	require.Len(t, spend, 1)
	assert.InDelta(t, 150, spend["Food"], 1e-9)
}

func TestSanitize_MalformedAmounts(t *testing.T) {
	txns := []model.Transaction{
		txn("2024-03-01", model.TypeExpense, "Food", math.NaN()),
		txn("2024-03-01", model.TypeExpense, "Food", math.Inf(1)),
		txn("2024-03-01", model.TypeExpense, "Food", -50),
		txn("2024-03-01", model.TypeExpense, "Food", 25),
	}

	// NaN, Inf, and negative amounts all contribute zero.
	rows := BuildLedger(txns)
	require.Len(t, rows, 1)
	assert.InDelta(t, -25, rows[0].Available, 1e-9)

	s := Summarize(txns, Range{})
	assert.InDelta(t, 25, s.Expense, 1e-9)
}
