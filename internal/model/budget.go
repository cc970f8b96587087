package model

// BudgetTier classifies how close a category's monthly spend is to its cap.
type BudgetTier string

const (
	// TierOnTrack means spend is below 80% of the cap.
	TierOnTrack BudgetTier = "on-track"
	// TierWarning means spend is at or above 80% of the cap.
	TierWarning BudgetTier = "warning"
	// TierExceeded means spend is at or above the cap.
	TierExceeded BudgetTier = "exceeded"
)

// BudgetStatus is the evaluated state of one category's monthly budget.
type BudgetStatus struct {
	Category string
	Cap      float64
	Spent    float64
	Percent  float64
	Tier     BudgetTier
	Message  string
}
