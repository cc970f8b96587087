package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsasi/daily-expenses-tracker/internal/ledger"
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	txns := []model.Transaction{
		{Date: "2024-01-01", Type: model.TypeIncome, Category: model.OpeningBalanceCategory, Amount: 500},
		{Date: "2024-01-02", Type: model.TypeIncome, Category: model.DefaultIncomeCategory, Amount: 1000},
		{Date: "2024-01-03", Type: model.TypeExpense, Category: "Food", Amount: 100},
		{Date: "2024-01-03", Type: model.TypeSavings, Category: model.DefaultSavingsCategory, Amount: 200, Account: "Bank"},
		{Date: "2024-01-04", Type: model.TypeExpense, Category: "Books & Zines", Amount: 50},
	}
	now, err := time.Parse(model.DateLayout, "2024-01-31")
	require.NoError(t, err)
	return Build(txns, ledger.Range{Start: "2024-01-01", End: "2024-01-31"}, now, "RS")
}

func TestSpreadsheet_Structure(t *testing.T) {
	out := string(Spreadsheet(sampleReport(t)))

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	assert.Contains(t, out, `<Worksheet ss:Name="Executive Summary">`)
	assert.Contains(t, out, `<Worksheet ss:Name="Master Matrix">`)
	for _, style := range []string{"sTitle", "sHeader", "sTotal"} {
		assert.Contains(t, out, `<Style ss:ID="`+style+`"`)
	}
	assert.Contains(t, out, "Period Income")
	assert.Contains(t, out, "Closing Total Wealth")
	assert.Contains(t, out, "Liquid Position")
	assert.Equal(t, strings.Count(out, "<Worksheet"), strings.Count(out, "</Worksheet>"))
}

func TestSpreadsheet_EscapesReservedCharacters(t *testing.T) {
	r := sampleReport(t)
	r.Transactions = append(r.Transactions, model.Transaction{
		Date: "2024-01-05", Type: model.TypeExpense, Category: `Food & <"Drink">`, Amount: 10,
	})

	out := string(Spreadsheet(r))

	assert.Contains(t, out, "Food &amp; &lt;&quot;Drink&quot;&gt;")
	assert.NotContains(t, out, `Food & <"Drink">`)
}

func TestSpreadsheet_ColumnOrdering(t *testing.T) {
	out := string(Spreadsheet(sampleReport(t)))
	start := strings.Index(out, "Master Matrix")
	require.GreaterOrEqual(t, start, 0)
	matrix := out[start:]

	// Reserved columns first, remaining categories alphabetical, liquid
	// position last.
	order := []string{
		model.OpeningBalanceCategory,
		model.DefaultIncomeCategory,
		model.DefaultSavingsCategory,
		"Books &amp; Zines",
		"Food",
		"Liquid Position",
	}
	last := -1
	for _, col := range order {
		idx := strings.Index(matrix, col)
		require.GreaterOrEqual(t, idx, 0, "missing column %q", col)
		assert.Greater(t, idx, last, "column %q out of order", col)
		last = idx
	}
}

func TestSpreadsheet_GrandTotalRow(t *testing.T) {
	r := sampleReport(t)
	out := string(Spreadsheet(r))

	assert.Contains(t, out, ">Total</Data>")
	// The final running balance: 500 + 1000 - 100 - 200 - 50 = 1150.
	assert.Contains(t, out, ">1150.00</Data>")
}

func TestMatrixColumns(t *testing.T) {
	txns := []model.Transaction{
		{Category: "Zoo"},
		{Category: model.DefaultSavingsCategory},
		{Category: "Apples"},
		{Category: model.OpeningBalanceCategory},
	}

	cols := matrixColumns(txns)
	assert.Equal(t, []string{
		model.OpeningBalanceCategory,
		model.DefaultSavingsCategory,
		"Apples",
		"Zoo",
	}, cols)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		r    ledger.Range
		ext  string
		want string
	}{
		{
			name: "bounded range",
			r:    ledger.Range{Start: "2024-01-01", End: "2024-03-15"},
			ext:  "xls",
			want: "expense_report_2024_01_01_to_2024_03_15.xls",
		},
		{
			name: "unbounded start",
			r:    ledger.Range{End: "2024-03-15"},
			ext:  ".pdf",
			want: "expense_report_beginning_to_2024_03_15.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.r, tt.ext))
		})
	}
}

func TestBuild_FilteringNeverChangesBalances(t *testing.T) {
	txns := []model.Transaction{
		{Date: "2024-01-01", Type: model.TypeIncome, Category: model.OpeningBalanceCategory, Amount: 500},
		{Date: "2024-02-10", Type: model.TypeExpense, Category: "Food", Amount: 100},
	}
	now, err := time.Parse(model.DateLayout, "2024-02-28")
	require.NoError(t, err)

	r := Build(txns, ledger.Range{Start: "2024-02-01", End: "2024-02-28"}, now, "RS")

	require.Len(t, r.Rows, 1)
	assert.InDelta(t, 400, r.Rows[0].Available, 1e-9, "running balance reflects pre-range history")
	require.Len(t, r.Transactions, 1)
}
