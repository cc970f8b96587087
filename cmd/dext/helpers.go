package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/mwsasi/daily-expenses-tracker/internal/config"
	"github.com/mwsasi/daily-expenses-tracker/internal/ledger"
	"github.com/mwsasi/daily-expenses-tracker/internal/storage"
)

// nowFunc is swappable in tests.
var nowFunc = time.Now

// initStorage opens the document store with proper path expansion and
// brings the schema up to date.
func initStorage(ctx context.Context) (*storage.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/dext/dext.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openState loads the full application state; callers defer store.Close().
func openState(ctx context.Context) (*storage.Store, *storage.State, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	state, err := store.LoadState(ctx)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}
	return store, state, nil
}

// currencySymbol returns the configured display currency.
func currencySymbol() string {
	return viper.GetString("currency.symbol")
}

// money renders an amount for display with the currency symbol.
func money(amount float64) string {
	return fmt.Sprintf("%s %.2f", currencySymbol(), amount)
}

// resolveRangeFlags turns the --range/--from/--to flags into a Range.
func resolveRangeFlags(preset, from, to string) (ledger.Range, error) {
	if from != "" || to != "" {
		return ledger.CustomRange(from, to), nil
	}
	if preset == "" {
		preset = string(ledger.PresetThisMonth)
	}
	p, err := ledger.ParsePreset(preset)
	if err != nil {
		return ledger.Range{}, err
	}
	return ledger.ResolvePreset(p, nowFunc()), nil
}
