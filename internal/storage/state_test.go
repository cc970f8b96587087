package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsasi/daily-expenses-tracker/internal/common"
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

func TestAddTransaction(t *testing.T) {
	st := NewState()

	added := st.AddTransaction(model.Transaction{
		Date: "2024-03-01", Type: model.TypeExpense, Category: "Food", Amount: 50, Account: "should be cleared",
	})

	assert.NotEmpty(t, added.ID)
	assert.Empty(t, added.Account, "only savings transactions carry an account")
	require.Len(t, st.Transactions, 1)

	savings := st.AddTransaction(model.Transaction{
		Date: "2024-03-02", Type: model.TypeSavings, Category: model.DefaultSavingsCategory, Amount: 200, Account: "  post office  ",
	})
	assert.Equal(t, "Post Office", savings.Account)
	assert.NotEqual(t, added.ID, savings.ID)
}

func TestUpdateTransaction(t *testing.T) {
	st := NewState()
	added := st.AddTransaction(model.Transaction{Date: "2024-03-01", Type: model.TypeExpense, Category: "Food", Amount: 50})

	added.Amount = 75
	added.Note = "corrected"
	require.NoError(t, st.UpdateTransaction(added))

	got, err := st.FindTransaction(added.ID)
	require.NoError(t, err)
	assert.InDelta(t, 75, got.Amount, 1e-9)
	assert.Equal(t, "corrected", got.Note)

	err = st.UpdateTransaction(model.Transaction{ID: "missing"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteTransaction(t *testing.T) {
	st := NewState()
	first := st.AddTransaction(model.Transaction{Date: "2024-03-01", Type: model.TypeExpense, Category: "Food", Amount: 50})
	second := st.AddTransaction(model.Transaction{Date: "2024-03-02", Type: model.TypeExpense, Category: "Rent", Amount: 900})

	require.NoError(t, st.DeleteTransaction(first.ID))
	require.Len(t, st.Transactions, 1)
	assert.Equal(t, second.ID, st.Transactions[0].ID)

	err := st.DeleteTransaction(first.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAddCategory(t *testing.T) {
	st := NewState()

	cfg, err := st.AddCategory("Coffee", "coffee", "#6F4E37", model.TypeExpense)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ID)
	assert.True(t, cfg.IsCustom)

	// Duplicates are rejected case-insensitively, against both customs and
	// the built-in set.
	_, err = st.AddCategory("  coffee ", "coffee", "#000000", model.TypeExpense)
	assert.ErrorIs(t, err, common.ErrDuplicateCategory)
	_, err = st.AddCategory("food", "utensils", "#000000", model.TypeExpense)
	assert.ErrorIs(t, err, common.ErrDuplicateCategory)
	require.Len(t, st.CustomCategories, 1)

	_, err = st.AddCategory("   ", "x", "#000000", model.TypeExpense)
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestRenameCategory_Cascades(t *testing.T) {
	st := NewState()
	_, err := st.AddCategory("Coffee", "coffee", "#6F4E37", model.TypeExpense)
	require.NoError(t, err)
	st.AddTransaction(model.Transaction{Date: "2024-03-01", Type: model.TypeExpense, Category: "Coffee", Amount: 5})
	st.AddTransaction(model.Transaction{Date: "2024-03-02", Type: model.TypeExpense, Category: "Food", Amount: 20})
	st.Budgets["Coffee"] = 150

	require.NoError(t, st.RenameCategory("Coffee", "Espresso"))

	assert.Equal(t, "Espresso", st.CustomCategories[0].Name)
	assert.Equal(t, "Espresso", st.Transactions[0].Category)
	assert.Equal(t, "Food", st.Transactions[1].Category, "unrelated transactions untouched")
	assert.Equal(t, map[string]float64{"Espresso": 150}, st.Budgets)
}

func TestRenameCategory_Guards(t *testing.T) {
	st := NewState()
	_, err := st.AddCategory("Coffee", "coffee", "#6F4E37", model.TypeExpense)
	require.NoError(t, err)

	err = st.RenameCategory("Food", "Groceries")
	assert.ErrorIs(t, err, common.ErrDefaultCategory)

	err = st.RenameCategory("Coffee", "Food")
	assert.ErrorIs(t, err, common.ErrDuplicateCategory)

	err = st.RenameCategory("Nope", "Whatever")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteCategory_ReassignsTransactions(t *testing.T) {
	st := NewState()
	_, err := st.AddCategory("Coffee", "coffee", "#6F4E37", model.TypeExpense)
	require.NoError(t, err)
	st.AddTransaction(model.Transaction{Date: "2024-03-01", Type: model.TypeExpense, Category: "Coffee", Amount: 5})
	st.AddTransaction(model.Transaction{Date: "2024-03-02", Type: model.TypeExpense, Category: "Coffee", Amount: 7})
	st.AddTransaction(model.Transaction{Date: "2024-03-03", Type: model.TypeExpense, Category: "Food", Amount: 20})
	st.Budgets["Coffee"] = 150

	reassigned, err := st.DeleteCategory("Coffee")
	require.NoError(t, err)

	assert.Equal(t, 2, reassigned)
	assert.Empty(t, st.CustomCategories)
	assert.Len(t, st.Transactions, 3, "history is preserved, not deleted")
	assert.Equal(t, model.DefaultExpenseCategory, st.Transactions[0].Category)
	assert.Equal(t, model.DefaultExpenseCategory, st.Transactions[1].Category)
	assert.NotContains(t, st.Budgets, "Coffee")

	_, err = st.DeleteCategory("Food")
	assert.ErrorIs(t, err, common.ErrDefaultCategory)
}

func TestSetBudget(t *testing.T) {
	st := NewState()

	st.SetBudget("Food", 2000)
	assert.Equal(t, map[string]float64{"Food": 2000}, st.Budgets)

	st.SetBudget("Food", 0)
	assert.NotContains(t, st.Budgets, "Food")
}

func TestAccounts_UnionWithSavingsTransactions(t *testing.T) {
	st := NewState()
	st.AddAccount("Bank")
	st.AddAccount("bank") // title-cased dedupe
	st.AddTransaction(model.Transaction{
		Date: "2024-03-01", Type: model.TypeSavings, Category: model.DefaultSavingsCategory, Amount: 100, Account: "post office",
	})
	st.AddTransaction(model.Transaction{
		Date: "2024-03-02", Type: model.TypeExpense, Category: "Food", Amount: 10,
	})

	// Savings accounts referenced only by transactions still show up.
	assert.Equal(t, []string{"Bank", "Post Office"}, st.Accounts())
}
