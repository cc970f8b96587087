package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// Document keys. Each holds one JSON-encoded value and is rewritten in
// full on every mutation.
const (
	keyTransactions = "transactions"
	keyBudgets      = "budgets"
	keyCategories   = "customCategories"
	keyAccounts     = "accounts"
)

// loadDocument reads one document into v. The second return reports whether
// the key existed; absence is not an error.
func (s *Store) loadDocument(ctx context.Context, key string, v any) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM documents WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read document %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return true, nil
}

// saveDocument rewrites one document in full.
func (s *Store) saveDocument(ctx context.Context, key string, v any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (key, value, write_count) VALUES (?, ?, 1)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP,
			write_count = documents.write_count + 1`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}

	slog.Debug("saved document", "key", key, "bytes", len(raw))
	return nil
}

// LoadState reads all four documents, substituting defaults for absent keys.
func (s *Store) LoadState(ctx context.Context) (*State, error) {
	state := NewState()

	if _, err := s.loadDocument(ctx, keyTransactions, &state.Transactions); err != nil {
		return nil, err
	}
	if _, err := s.loadDocument(ctx, keyBudgets, &state.Budgets); err != nil {
		return nil, err
	}
	if _, err := s.loadDocument(ctx, keyCategories, &state.CustomCategories); err != nil {
		return nil, err
	}
	if _, err := s.loadDocument(ctx, keyAccounts, &state.AccountList); err != nil {
		return nil, err
	}

	slog.Debug("loaded state",
		"transactions", len(state.Transactions),
		"budgets", len(state.Budgets),
		"custom_categories", len(state.CustomCategories),
		"accounts", len(state.AccountList))
	return state, nil
}

// SaveTransactions persists the full transaction list.
func (s *Store) SaveTransactions(ctx context.Context, txns []model.Transaction) error {
	return s.saveDocument(ctx, keyTransactions, txns)
}

// SaveBudgets persists the full category-cap mapping.
func (s *Store) SaveBudgets(ctx context.Context, budgets map[string]float64) error {
	return s.saveDocument(ctx, keyBudgets, budgets)
}

// SaveCategories persists the full custom-category list.
func (s *Store) SaveCategories(ctx context.Context, categories []model.CategoryConfig) error {
	return s.saveDocument(ctx, keyCategories, categories)
}

// SaveAccounts persists the full known-accounts list.
func (s *Store) SaveAccounts(ctx context.Context, accounts []string) error {
	return s.saveDocument(ctx, keyAccounts, accounts)
}

// SaveState persists all four documents.
func (s *Store) SaveState(ctx context.Context, state *State) error {
	if err := s.SaveTransactions(ctx, state.Transactions); err != nil {
		return err
	}
	if err := s.SaveBudgets(ctx, state.Budgets); err != nil {
		return err
	}
	if err := s.SaveCategories(ctx, state.CustomCategories); err != nil {
		return err
	}
	return s.SaveAccounts(ctx, state.AccountList)
}

// Reset deletes every document, wiping all recorded data.
func (s *Store) Reset(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents`); err != nil {
		return fmt.Errorf("failed to reset documents: %w", err)
	}
	slog.Debug("reset all documents")
	return nil
}
