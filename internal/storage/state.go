package storage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mwsasi/daily-expenses-tracker/internal/common"
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// State bundles the four persisted documents as one in-memory working set.
// Mutations happen here; the caller persists the touched documents
// afterwards. Single writer, last write wins.
type State struct {
	Transactions     []model.Transaction
	Budgets          map[string]float64
	CustomCategories []model.CategoryConfig
	AccountList      []string
}

// NewState returns an empty state with all documents at their defaults.
func NewState() *State {
	return &State{
		Transactions: []model.Transaction{},
		Budgets:      map[string]float64{},
		AccountList:  []string{},
	}
}

var titleCaser = cases.Title(language.Und)

// AddTransaction appends a new transaction, assigning its ID. Savings
// transactions register their account label as a known account.
func (st *State) AddTransaction(t model.Transaction) model.Transaction {
	t.ID = uuid.NewString()
	if t.Type == model.TypeSavings && t.Account != "" {
		t.Account = titleCaser.String(strings.TrimSpace(t.Account))
	} else if t.Type != model.TypeSavings {
		t.Account = ""
	}
	st.Transactions = append(st.Transactions, t)
	return t
}

// UpdateTransaction replaces the transaction with the same ID in place.
func (st *State) UpdateTransaction(t model.Transaction) error {
	for i := range st.Transactions {
		if st.Transactions[i].ID == t.ID {
			st.Transactions[i] = t
			return nil
		}
	}
	return fmt.Errorf("%w: transaction %s", common.ErrNotFound, t.ID)
}

// DeleteTransaction removes a transaction by ID.
func (st *State) DeleteTransaction(id string) error {
	for i := range st.Transactions {
		if st.Transactions[i].ID == id {
			st.Transactions = append(st.Transactions[:i], st.Transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
}

// FindTransaction returns the transaction with the given ID.
func (st *State) FindTransaction(id string) (model.Transaction, error) {
	for _, t := range st.Transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
}

// categoryNameTaken checks name uniqueness case-insensitively across
// defaults and customs.
func (st *State) categoryNameTaken(name string) bool {
	for _, cfg := range model.DefaultCategories {
		if model.EqualCategoryNames(cfg.Name, name) {
			return true
		}
	}
	for _, cfg := range st.CustomCategories {
		if model.EqualCategoryNames(cfg.Name, name) {
			return true
		}
	}
	return false
}

// AddCategory creates a custom category. Duplicate names (against defaults
// and existing customs, case-insensitive) are rejected without mutation.
func (st *State) AddCategory(name, iconName, color string, ctype model.TransactionType) (model.CategoryConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.CategoryConfig{}, fmt.Errorf("%w: category name", ErrEmptyString)
	}
	if st.categoryNameTaken(name) {
		return model.CategoryConfig{}, fmt.Errorf("%w: %q", common.ErrDuplicateCategory, name)
	}

	cfg := model.CategoryConfig{
		ID:       uuid.NewString(),
		Name:     name,
		IconName: iconName,
		Color:    color,
		Type:     ctype,
		IsCustom: true,
	}
	st.CustomCategories = append(st.CustomCategories, cfg)
	return cfg, nil
}

// RenameCategory renames a custom category and cascades: every transaction
// referencing the old name is rewritten, and any budget cap keyed by the
// old name moves to the new key. Default categories cannot be renamed.
func (st *State) RenameCategory(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: category name", ErrEmptyString)
	}

	idx := -1
	for i, cfg := range st.CustomCategories {
		if cfg.Name == oldName {
			idx = i
			break
		}
	}
	if idx < 0 {
		if _, ok := defaultCategoryByName(oldName); ok {
			return fmt.Errorf("%w: %q", common.ErrDefaultCategory, oldName)
		}
		return fmt.Errorf("%w: category %q", common.ErrNotFound, oldName)
	}

	if !model.EqualCategoryNames(oldName, newName) && st.categoryNameTaken(newName) {
		return fmt.Errorf("%w: %q", common.ErrDuplicateCategory, newName)
	}

	st.CustomCategories[idx].Name = newName
	for i := range st.Transactions {
		if st.Transactions[i].Category == oldName {
			st.Transactions[i].Category = newName
		}
	}
	if cap, ok := st.Budgets[oldName]; ok {
		delete(st.Budgets, oldName)
		st.Budgets[newName] = cap
	}
	return nil
}

// DeleteCategory removes a custom category, reassigning its transactions to
// the type-appropriate default name and dropping any budget cap keyed by
// it. The transactions themselves are kept.
func (st *State) DeleteCategory(name string) (reassigned int, err error) {
	idx := -1
	var deleted model.CategoryConfig
	for i, cfg := range st.CustomCategories {
		if cfg.Name == name {
			idx = i
			deleted = cfg
			break
		}
	}
	if idx < 0 {
		if _, ok := defaultCategoryByName(name); ok {
			return 0, fmt.Errorf("%w: %q", common.ErrDefaultCategory, name)
		}
		return 0, fmt.Errorf("%w: category %q", common.ErrNotFound, name)
	}

	st.CustomCategories = append(st.CustomCategories[:idx], st.CustomCategories[idx+1:]...)

	fallback := model.DefaultCategoryFor(deleted.Type)
	for i := range st.Transactions {
		if st.Transactions[i].Category == name {
			st.Transactions[i].Category = fallback
			reassigned++
		}
	}
	delete(st.Budgets, name)
	return reassigned, nil
}

func defaultCategoryByName(name string) (model.CategoryConfig, bool) {
	for _, cfg := range model.DefaultCategories {
		if cfg.Name == name {
			return cfg, true
		}
	}
	return model.CategoryConfig{}, false
}

// SetBudget sets a monthly cap for a category. A cap of zero removes it.
func (st *State) SetBudget(category string, cap float64) {
	if cap <= 0 {
		delete(st.Budgets, category)
		return
	}
	st.Budgets[category] = cap
}

// AddAccount registers an account label, title-cased, deduplicated by
// exact match.
func (st *State) AddAccount(name string) string {
	name = titleCaser.String(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	for _, existing := range st.AccountList {
		if existing == name {
			return name
		}
	}
	st.AccountList = append(st.AccountList, name)
	return name
}

// Accounts returns the effective account set: the union of the stored list
// and every account appearing on a savings transaction, sorted. Stale
// labels on old transactions are kept rather than lost.
func (st *State) Accounts() []string {
	seen := make(map[string]bool, len(st.AccountList))
	out := make([]string, 0, len(st.AccountList))
	for _, name := range st.AccountList {
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, t := range st.Transactions {
		if t.Type != model.TypeSavings || t.Account == "" {
			continue
		}
		name := titleCaser.String(t.Account)
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
