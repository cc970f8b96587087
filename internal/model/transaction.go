// Package model defines the core domain types shared across the application.
package model

import (
	"encoding/json"
	"strconv"
)

// DateLayout is the canonical calendar-date format used throughout the
// ledger. Dates carry no time component and sort lexicographically.
const DateLayout = "2006-01-02"

// TransactionType classifies a transaction as income, expense, or savings.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "INCOME"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "EXPENSE"
	// TypeSavings represents a contribution moved into a savings account.
	TypeSavings TransactionType = "SAVINGS"
)

// Valid reports whether the type is one of the three known kinds.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeSavings:
		return true
	}
	return false
}

// OpeningBalanceCategory is the reserved income category that seeds the
// running balance. It is excluded from period income aggregates.
const OpeningBalanceCategory = "Opening Balance"

// Transaction is a single recorded ledger fact. Once created it is only
// modified by an explicit edit addressed by ID.
type Transaction struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"` // YYYY-MM-DD
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Amount   float64         `json:"amount"`
	Note     string          `json:"note,omitempty"`
	Account  string          `json:"account,omitempty"` // savings destination only
}

// IsOpeningBalance reports whether the transaction seeds the running balance.
func (t Transaction) IsOpeningBalance() bool {
	return t.Category == OpeningBalanceCategory
}

// UnmarshalJSON tolerates malformed amounts in persisted documents: a
// non-numeric or missing amount decodes as zero rather than failing the
// whole document.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		Amount any `json:"amount"`
		*alias
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Amount = coerceAmount(aux.Amount)
	return nil
}

func coerceAmount(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return 0
}
