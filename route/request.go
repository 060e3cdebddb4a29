package route

import (
	"time"

	"github.com/randalmurphal/routekit/rank"
	"github.com/randalmurphal/routekit/task"
	"github.com/randalmurphal/routekit/tier"
	"github.com/randalmurphal/routekit/tokens"
)

// Request is one routing inquiry. Only Prompt and ConfiguredProviders
// are required; everything else refines the decision.
type Request struct {
	// WorkspaceID scopes preferences, budgets, and cache history.
	// Empty means an anonymous request with no constraints.
	WorkspaceID string `json:"workspace_id,omitempty"`

	// Prompt is the natural-language request to route.
	Prompt string `json:"prompt"`

	// TaskHint is an optional caller-supplied category. A valid hint
	// leads the detected categories and can raise the classified tier;
	// an unknown hint is ignored with a warning.
	TaskHint task.Category `json:"task_hint,omitempty"`

	// ContextTokens is the caller's estimate of ambient context
	// (attached files, history) in tokens.
	ContextTokens int `json:"context_tokens,omitempty"`

	// TierOverride forces a tier by name, bypassing classification and
	// preference clamps. An invalid name rejects the request.
	TierOverride string `json:"tier_override,omitempty"`

	// RequiresTools restricts routing to providers with
	// function-calling support.
	RequiresTools bool `json:"requires_tools,omitempty"`

	// ConfiguredProviders are the provider IDs available to this
	// caller. Routing never selects outside this set.
	ConfiguredProviders []string `json:"configured_providers"`

	// PreferredProviders narrows candidates for this request only,
	// overriding the workspace preference's list when set.
	PreferredProviders []string `json:"preferred_providers,omitempty"`
}

// TierSource records how the resolved tier was determined.
type TierSource string

// TierSource values.
const (
	TierSourceOverride         TierSource = "override"
	TierSourceWorkspaceDefault TierSource = "workspace-default"
	TierSourceClassified       TierSource = "classified"
	TierSourceClamped          TierSource = "classified-clamped"
)

// CandidateScore is one considered provider in a decision, kept for
// explainability.
type CandidateScore struct {
	ProviderID string         `json:"provider_id"`
	ModelID    string         `json:"model_id"`
	Score      float64        `json:"score"`
	Breakdown  rank.Breakdown `json:"breakdown"`

	// EffectiveCents is the candidate's projected cost. Negative when
	// pricing was unavailable.
	EffectiveCents float64 `json:"effective_cents"`
}

// Decision is the routing outcome for one request.
type Decision struct {
	// ID is a unique identifier for correlating the decision with the
	// eventual outcome report and audit records.
	ID string `json:"id"`

	WorkspaceID string `json:"workspace_id,omitempty"`

	// Tier is the resolved capability tier and TierSource says how it
	// was chosen.
	Tier       tier.Tier  `json:"tier"`
	TierSource TierSource `json:"tier_source"`

	// Reason explains the tier choice in plain words, for surfacing to
	// callers without re-deriving the decision.
	Reason string `json:"reason"`

	// ProviderID and ModelID identify the selected backend.
	ProviderID string `json:"provider_id"`
	ModelID    string `json:"model_id"`

	// Categories are the detected task categories in relevance order.
	Categories []task.Category `json:"categories"`

	// Usage is the projected token usage the costs are based on.
	Usage tokens.Usage `json:"usage"`

	// Fingerprint identifies the prompt prefix for cache correlation;
	// callers pass it back in the outcome report.
	Fingerprint string `json:"fingerprint"`

	// CacheHitProbability is the predicted chance the prompt hits the
	// provider's cache.
	CacheHitProbability float64 `json:"cache_hit_probability"`

	// EffectiveCents is the projected cost after the cache discount;
	// FullCents is the undiscounted baseline.
	EffectiveCents float64 `json:"effective_cents"`
	FullCents      float64 `json:"full_cents"`

	// CacheDiscount is 1 - effective/full, in [0, 1].
	CacheDiscount float64 `json:"cache_discount"`

	// Candidates lists every considered provider with its score
	// breakdown, best first.
	Candidates []CandidateScore `json:"candidates"`

	CreatedAt time.Time `json:"created_at"`
}

// Outcome reports how an executed request went. The caller executes the
// request against the chosen provider and feeds the result back here.
type Outcome struct {
	WorkspaceID string `json:"workspace_id,omitempty"`

	// Fingerprint is the decision's prompt fingerprint.
	Fingerprint string `json:"fingerprint"`

	// Tier is the tier the request was served at.
	Tier tier.Tier `json:"tier"`

	// Quality is the scored response quality in [0, 100], nil when
	// unscored.
	Quality *int `json:"quality,omitempty"`

	// UpstreamError reports a provider-side failure.
	UpstreamError bool `json:"upstream_error,omitempty"`

	// RateLimited reports a provider rate-limit rejection.
	RateLimited bool `json:"rate_limited,omitempty"`

	// WasCached reports whether the provider served the prompt from
	// its cache.
	WasCached bool `json:"was_cached"`
}
