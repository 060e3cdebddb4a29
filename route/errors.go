package route

import "fmt"

// RejectionCode classifies why routing refused a request.
type RejectionCode string

// Rejection codes.
const (
	RejectInvalidOverride       RejectionCode = "invalid-tier-override"
	RejectNoProvidersConfigured RejectionCode = "no-providers-configured"
	RejectNoEligibleModel       RejectionCode = "no-eligible-model"
	RejectBudgetExceeded        RejectionCode = "budget-exceeded"
)

// Rejection explains a refused request. It carries the failed constraint
// and the current versus limit values so the calling layer can surface
// the outcome without re-deriving it. Rejections are per-request
// failures, never process failures.
type Rejection struct {
	// Code classifies the rejection.
	Code RejectionCode `json:"code"`

	// Message is a human-readable explanation.
	Message string `json:"message"`

	// Constraint names the violated budget ceiling, when one applies
	// ("per_request", "monthly").
	Constraint string `json:"constraint,omitempty"`

	// Current and Limit hold the compared values for constraint
	// rejections.
	Current float64 `json:"current,omitempty"`
	Limit   float64 `json:"limit,omitempty"`

	err error
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	if r.Message != "" {
		return fmt.Sprintf("%s: %s", r.Code, r.Message)
	}
	return string(r.Code)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (r *Rejection) Unwrap() error {
	return r.err
}
