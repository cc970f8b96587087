package ledger

import (
	"fmt"
	"sort"

	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// Budget tier thresholds, in percent of the configured cap.
const (
	warningThreshold  = 80
	exceededThreshold = 100
)

// EvaluateBudgets compares each configured cap against the current month's
// spend. Categories with a zero or absent cap are excluded entirely rather
// than reported at 0%, so a configured zero never reaches the division.
// Results are sorted by descending percent so the most at-risk categories
// surface first.
func EvaluateBudgets(caps map[string]float64, monthlySpend map[string]float64) []model.BudgetStatus {
	statuses := make([]model.BudgetStatus, 0, len(caps))
	for category, cap := range caps {
		if cap <= 0 {
			continue
		}
		spent := monthlySpend[category]
		percent := spent / cap * 100

		status := model.BudgetStatus{
			Category: category,
			Cap:      cap,
			Spent:    spent,
			Percent:  percent,
		}
		switch {
		case percent >= exceededThreshold:
			status.Tier = model.TierExceeded
			status.Message = fmt.Sprintf("over budget by %.2f", spent-cap)
		case percent >= warningThreshold:
			status.Tier = model.TierWarning
			status.Message = fmt.Sprintf("%.0f%% of cap used", percent)
		default:
			status.Tier = model.TierOnTrack
			status.Message = fmt.Sprintf("%.0f%% of cap used", percent)
		}
		statuses = append(statuses, status)
	}

	sort.Slice(statuses, func(i, j int) bool {
		if statuses[i].Percent != statuses[j].Percent {
			return statuses[i].Percent > statuses[j].Percent
		}
		return statuses[i].Category < statuses[j].Category
	})
	return statuses
}

// MasterProgress compares the month's total spend, across every category,
// against the combined configured caps. Spend in uncapped categories still
// counts toward the numerator. Clamped to 100 so a display bar never
// overflows even though the underlying ratio can.
func MasterProgress(caps map[string]float64, monthlySpend map[string]float64) float64 {
	var totalCap float64
	for _, cap := range caps {
		if cap <= 0 {
			continue
		}
		totalCap += cap
	}
	if totalCap <= 0 {
		return 0
	}

	var totalSpent float64
	for _, spent := range monthlySpend {
		totalSpent += spent
	}
	percent := totalSpent / totalCap * 100
	if percent > 100 {
		return 100
	}
	return percent
}
