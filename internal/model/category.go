package model

import "strings"

// CategoryConfig is a named, typed, visually styled bucket for transactions.
type CategoryConfig struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	IconName string          `json:"iconName"`
	Color    string          `json:"color"`
	Type     TransactionType `json:"type"`
	IsCustom bool            `json:"isCustom"`
}

// Default category names that transactions fall back to when their own
// category is deleted.
const (
	DefaultIncomeCategory  = "Daily Income"
	DefaultSavingsCategory = "Savings"
	DefaultExpenseCategory = "Others"
)

// DefaultCategories is the immutable seed set. "Others" is the expense
// catch-all; the ledger's fallback resolution returns it for unknown names.
var DefaultCategories = []CategoryConfig{
	{ID: "opening-balance", Name: OpeningBalanceCategory, IconName: "wallet", Color: "#0EA5E9", Type: TypeIncome},
	{ID: "daily-income", Name: DefaultIncomeCategory, IconName: "banknote", Color: "#22C55E", Type: TypeIncome},
	{ID: "savings", Name: DefaultSavingsCategory, IconName: "piggy-bank", Color: "#A855F7", Type: TypeSavings},
	{ID: "food", Name: "Food", IconName: "utensils", Color: "#F97316", Type: TypeExpense},
	{ID: "groceries", Name: "Groceries", IconName: "shopping-cart", Color: "#84CC16", Type: TypeExpense},
	{ID: "transport", Name: "Transport", IconName: "bus", Color: "#3B82F6", Type: TypeExpense},
	{ID: "rent", Name: "Rent", IconName: "home", Color: "#EF4444", Type: TypeExpense},
	{ID: "utilities", Name: "Utilities", IconName: "plug", Color: "#14B8A6", Type: TypeExpense},
	{ID: "health", Name: "Health", IconName: "heart-pulse", Color: "#EC4899", Type: TypeExpense},
	{ID: "entertainment", Name: "Entertainment", IconName: "clapperboard", Color: "#8B5CF6", Type: TypeExpense},
	{ID: "shopping", Name: "Shopping", IconName: "shopping-bag", Color: "#EAB308", Type: TypeExpense},
	{ID: "education", Name: "Education", IconName: "graduation-cap", Color: "#06B6D4", Type: TypeExpense},
	{ID: "others", Name: DefaultExpenseCategory, IconName: "circle-ellipsis", Color: "#64748B", Type: TypeExpense},
}

// DefaultCategoryFor returns the reassignment target used when a custom
// category of the given type is deleted.
func DefaultCategoryFor(t TransactionType) string {
	switch t {
	case TypeIncome:
		return DefaultIncomeCategory
	case TypeSavings:
		return DefaultSavingsCategory
	default:
		return DefaultExpenseCategory
	}
}

// EqualCategoryNames compares category names the way uniqueness checks do:
// case-insensitively, ignoring surrounding whitespace.
func EqualCategoryNames(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
