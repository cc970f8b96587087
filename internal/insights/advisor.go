package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mwsasi/daily-expenses-tracker/internal/common"
	"github.com/mwsasi/daily-expenses-tracker/internal/ledger"
	"github.com/mwsasi/daily-expenses-tracker/internal/model"
)

// DefaultCooldown is the minimum interval between advisory requests.
const DefaultCooldown = 60 * time.Second

// Result is the outcome of one advisory request. Exactly one field set is
// meaningful: Advice carries text (including the explanatory strings
// produced when the upstream is unavailable or rate-limited), while a
// positive CooldownRemaining means the request was not yet eligible and
// nothing was sent.
type Result struct {
	Advice            string
	CooldownRemaining time.Duration
}

// Advisor wraps a Client with an explicit cooldown. The clock and the
// last-request timestamp are injected state so callers can test eligibility
// without a process-wide singleton.
type Advisor struct {
	client      Client
	clock       func() time.Time
	cooldown    time.Duration
	lastRequest time.Time
}

// NewAdvisor creates an advisor. A nil client is allowed and means no
// credential was configured; requests then return an explanatory string. A
// nil clock defaults to time.Now.
func NewAdvisor(client Client, cooldown time.Duration, clock func() time.Time) *Advisor {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if clock == nil {
		clock = time.Now
	}
	return &Advisor{client: client, cooldown: cooldown, clock: clock}
}

// Request asks for advice on a snapshot of the transaction history. It
// never returns an error: upstream failures degrade to advisory text, per
// the collaborator contract.
func (a *Advisor) Request(ctx context.Context, txns []model.Transaction, custom []model.CategoryConfig) Result {
	now := a.clock()
	if !a.lastRequest.IsZero() {
		if remaining := a.cooldown - now.Sub(a.lastRequest); remaining > 0 {
			return Result{CooldownRemaining: remaining}
		}
	}

	if a.client == nil {
		return Result{Advice: "AI insights are not configured. Set insights.api_key (or the DEXT_INSIGHTS_API_KEY environment variable) to enable them."}
	}

	a.lastRequest = now
	prompt := BuildPrompt(txns, custom, now)

	var advice string
	err := common.WithRetry(ctx, func() error {
		var adviseErr error
		advice, adviseErr = a.client.Advise(ctx, prompt)
		return adviseErr
	}, common.RetryOptions{MaxAttempts: 2})

	switch {
	case err == nil:
		return Result{Advice: advice}
	case errors.Is(err, common.ErrRateLimit):
		return Result{Advice: "The insights service is rate-limited right now. Try again in a little while."}
	default:
		common.LogError(err, "insights request failed", nil)
		return Result{Advice: "Insights are temporarily unavailable: " + err.Error()}
	}
}

// BuildPrompt condenses the transaction history into a compact snapshot the
// advisory model can reason about.
func BuildPrompt(txns []model.Transaction, custom []model.CategoryConfig, now time.Time) string {
	g := ledger.Overview(txns, now)
	monthExpenses := ledger.FilterTransactions(txns,
		ledger.ResolvePreset(ledger.PresetThisMonth, now), model.TypeExpense)
	shares := ledger.Concentration(monthExpenses, custom)

	var b strings.Builder
	fmt.Fprintf(&b, "Spending snapshot as of %s.\n", now.Format(model.DateLayout))
	fmt.Fprintf(&b, "Transactions recorded: %d.\n", len(txns))
	fmt.Fprintf(&b, "Current balance: %.2f, total savings: %.2f.\n", g.CurrentBalance, g.TotalSavings)
	fmt.Fprintf(&b, "This month: income %.2f, expenses %.2f, savings %.2f.\n",
		g.MonthIncome, g.MonthExpense, g.MonthSavings)

	if len(shares) > 0 {
		b.WriteString("Top expense categories this month:\n")
		for i, s := range shares {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: %.2f\n", s.Name, s.Amount)
		}
	}

	b.WriteString("Give brief, practical advice on this spending pattern.")
	return b.String()
}
