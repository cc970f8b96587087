// Package ledger implements the pure aggregation engine: category
// resolution, date-range presets, running-balance ledger rows, period and
// global summaries, and budget evaluation. Every function here is a
// stateless transform over the full transaction list so callers can
// recompute on any state change.
package ledger

import (
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// Unclassified is the catch-all category config returned for names that do
// not resolve. It mirrors the seeded "Others" expense bucket but is its own
// named sentinel so resolution never depends on seed ordering.
var Unclassified = model.CategoryConfig{
	ID:       "others",
	Name:     model.DefaultExpenseCategory,
	IconName: "circle-ellipsis",
	Color:    "#64748B",
	Type:     model.TypeExpense,
}

// AllCategories returns the default seed set followed by the custom list.
func AllCategories(custom []model.CategoryConfig) []model.CategoryConfig {
	all := make([]model.CategoryConfig, 0, len(model.DefaultCategories)+len(custom))
	all = append(all, model.DefaultCategories...)
	all = append(all, custom...)
	return all
}

// Resolve looks up a category by exact name across defaults and custom
// categories. The second return reports whether the name matched.
func Resolve(name string, custom []model.CategoryConfig) (model.CategoryConfig, bool) {
	for _, cfg := range model.DefaultCategories {
		if cfg.Name == name {
			return cfg, true
		}
	}
	for _, cfg := range custom {
		if cfg.Name == name {
			return cfg, true
		}
	}
	return model.CategoryConfig{}, false
}

// ResolveOrFallback resolves a category name, falling back to the
// Unclassified sentinel for unknown names. Callers must tolerate receiving
// a config whose Name differs from the requested name. Total; never errors.
func ResolveOrFallback(name string, custom []model.CategoryConfig) model.CategoryConfig {
	if cfg, ok := Resolve(name, custom); ok {
		return cfg
	}
	return Unclassified
}
