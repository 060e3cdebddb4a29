// Package escalate decides whether a finished request should be retried
// at a stronger tier.
//
// The decision is a terminal one-step state machine: given the tier just
// used and the outcome signals (quality score, upstream error, rate
// limit), the result is either "no escalation" or "escalate one tier
// up". Escalation never jumps tiers and never loops at the top; a
// request already at the maximum tier yields a no-op decision rather
// than an error.
package escalate

import (
	"fmt"

	"github.com/randalmurphal/routekit/tier"
)

// Reason codes for an escalation decision.
type Reason string

// Reason values.
const (
	ReasonQualityBelowThreshold Reason = "quality-below-threshold"
	ReasonUpstreamError         Reason = "upstream-error"
	ReasonRateLimited           Reason = "rate-limited"
)

// Signal carries the observed outcome of a request at a tier.
type Signal struct {
	// Tier is the tier the request was served at.
	Tier tier.Tier

	// Quality is the response quality score in [0, 100], when the
	// caller scored the response. Nil means unscored.
	Quality *int

	// UpstreamError reports a provider-side failure.
	UpstreamError bool

	// RateLimited reports the provider rejected the request for rate
	// limiting.
	RateLimited bool
}

// Decision is the escalation outcome for one request.
type Decision struct {
	// Escalate is true when the request should be retried at Target.
	Escalate bool `json:"should_escalate"`

	// Reason is set when Escalate is true.
	Reason Reason `json:"reason,omitempty"`

	// From is the tier the request was served at.
	From tier.Tier `json:"from"`

	// Target is the tier to retry at. Equal to From when not
	// escalating.
	Target tier.Tier `json:"target"`

	// Detail is a human-readable explanation of the decision.
	Detail string `json:"detail,omitempty"`
}

// DefaultQualityThresholds is the per-tier minimum acceptable response
// quality. Scores below the tier's threshold trigger escalation. Higher
// tiers demand more because their cost is only justified by quality.
// Tunable policy, not derived from a formula.
var DefaultQualityThresholds = map[tier.Tier]int{
	tier.Micro:     50,
	tier.Standard:  55,
	tier.Versatile: 60,
	tier.Heavy:     65,
	tier.Complex:   70,
}

// Evaluator applies escalation policy to outcome signals.
type Evaluator struct {
	thresholds map[tier.Tier]int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithQualityThresholds replaces the per-tier quality thresholds.
// Missing tiers never escalate on quality.
func WithQualityThresholds(thresholds map[tier.Tier]int) Option {
	return func(e *Evaluator) {
		if thresholds != nil {
			e.thresholds = thresholds
		}
	}
}

// NewEvaluator creates an evaluator with the default thresholds unless
// overridden.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{thresholds: DefaultQualityThresholds}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate decides whether to escalate. Signals are checked in a fixed
// order: rate limit, upstream error, then quality, so a response that is
// both rate-limited and low quality reports the rate limit. When
// autoEscalate is false the result is always a no-op, regardless of
// signals.
func (e *Evaluator) Evaluate(sig Signal, autoEscalate bool) Decision {
	if !autoEscalate {
		return noop(sig.Tier, "auto-escalation disabled")
	}

	reason, detail := e.trigger(sig)
	if reason == "" {
		return noop(sig.Tier, "")
	}

	target, ok := sig.Tier.Next()
	if !ok {
		return noop(sig.Tier, "already at maximum tier")
	}

	return Decision{
		Escalate: true,
		Reason:   reason,
		From:     sig.Tier,
		Target:   target,
		Detail:   detail,
	}
}

// trigger returns the first matching escalation reason, or "".
func (e *Evaluator) trigger(sig Signal) (Reason, string) {
	if sig.RateLimited {
		return ReasonRateLimited, fmt.Sprintf("rate limited at tier %s", sig.Tier)
	}
	if sig.UpstreamError {
		return ReasonUpstreamError, fmt.Sprintf("upstream error at tier %s", sig.Tier)
	}
	if sig.Quality != nil {
		threshold, ok := e.thresholds[sig.Tier]
		if ok && *sig.Quality < threshold {
			return ReasonQualityBelowThreshold,
				fmt.Sprintf("quality %d below threshold %d for tier %s", *sig.Quality, threshold, sig.Tier)
		}
	}
	return "", ""
}

func noop(from tier.Tier, detail string) Decision {
	return Decision{From: from, Target: from, Detail: detail}
}
