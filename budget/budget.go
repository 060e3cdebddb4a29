// Package budget enforces workspace spend ceilings.
//
// Check is a pure function over its inputs: a projected request cost, the
// workspace's month-to-date spend as reported by an external accounting
// source, and the workspace preference carrying the ceilings. The engine
// does not track spend itself. A nil result means the request is allowed;
// otherwise the Violation names the ceiling that failed with the current
// and limit values, so the calling layer can explain the rejection
// without re-deriving it.
package budget

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/routekit/workspace"
)

// Metric identifies which ceiling a violation concerns.
type Metric string

// Metric values.
const (
	MetricPerRequest Metric = "per_request"
	MetricMonthly    Metric = "monthly"
)

// Violation describes a failed budget check.
type Violation struct {
	// Metric is the ceiling that failed.
	Metric Metric `json:"metric"`

	// CurrentCents is the value compared against the ceiling: the
	// request cost for per-request, projected month spend for monthly.
	CurrentCents float64 `json:"current_cents"`

	// LimitCents is the configured ceiling.
	LimitCents float64 `json:"limit_cents"`
}

// Error implements the error interface.
func (v *Violation) Error() string {
	switch v.Metric {
	case MetricPerRequest:
		return fmt.Sprintf("request cost %.4f cents exceeds per-request ceiling %.4f cents",
			v.CurrentCents, v.LimitCents)
	case MetricMonthly:
		return fmt.Sprintf("projected monthly spend %.4f cents exceeds budget %.4f cents",
			v.CurrentCents, v.LimitCents)
	default:
		return fmt.Sprintf("budget ceiling %q exceeded: %.4f > %.4f cents",
			string(v.Metric), v.CurrentCents, v.LimitCents)
	}
}

// Check validates a projected request cost against the workspace's
// ceilings. monthToDateCents is nil when the accounting source has no
// data; the monthly check then degrades to a no-op with a logged
// warning rather than blocking all requests. A nil preference allows
// everything. Identical inputs always yield identical results.
func Check(requestCents float64, monthToDateCents *float64, pref *workspace.Preference) *Violation {
	if pref == nil {
		return nil
	}

	if pref.MaxRequestCents > 0 && requestCents > pref.MaxRequestCents {
		return &Violation{
			Metric:       MetricPerRequest,
			CurrentCents: requestCents,
			LimitCents:   pref.MaxRequestCents,
		}
	}

	if pref.MonthlyBudgetCents > 0 {
		if monthToDateCents == nil {
			slog.Warn("spend data unavailable, skipping monthly budget check",
				slog.Float64("budget_cents", pref.MonthlyBudgetCents))
			return nil
		}
		// Reject the request that would cross the ceiling, not just the
		// first request after it.
		projected := *monthToDateCents + requestCents
		if projected > pref.MonthlyBudgetCents {
			return &Violation{
				Metric:       MetricMonthly,
				CurrentCents: projected,
				LimitCents:   pref.MonthlyBudgetCents,
			}
		}
	}

	return nil
}
