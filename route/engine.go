package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/routekit/budget"
	"github.com/randalmurphal/routekit/classify"
	"github.com/randalmurphal/routekit/escalate"
	"github.com/randalmurphal/routekit/hitrate"
	"github.com/randalmurphal/routekit/pricing"
	"github.com/randalmurphal/routekit/provider"
	"github.com/randalmurphal/routekit/rank"
	"github.com/randalmurphal/routekit/task"
	"github.com/randalmurphal/routekit/tier"
	"github.com/randalmurphal/routekit/tokens"
	"github.com/randalmurphal/routekit/workspace"
)

// DefaultLookupTimeout bounds each external lookup (preference, pricing,
// spend) on the request path.
const DefaultLookupTimeout = 2 * time.Second

// scoreTieEpsilon is how close two scores must be to count as tied and
// fall through to the effective-cost comparison.
const scoreTieEpsilon = 1e-6

// DefaultQualityFloors is the minimum model quality admitted per tier.
// Models below the floor are excluded even when cheaper. Tunable policy,
// not derived from a formula.
var DefaultQualityFloors = map[tier.Tier]int{
	tier.Micro:     20,
	tier.Standard:  40,
	tier.Versatile: 55,
	tier.Heavy:     65,
	tier.Complex:   75,
}

// SpendSource reports a workspace's accumulated spend for the monthly
// budget check. The engine does not track spend itself; absence of a
// source degrades the check to a no-op.
type SpendSource interface {
	MonthToDateCents(ctx context.Context, workspaceID string) (float64, error)
}

// Engine is the routing orchestrator. It resolves a tier for each
// request, ranks providers, projects costs with the cache-hit estimate,
// enforces budgets, and evaluates escalation when outcomes come back.
//
// All decision logic is synchronous and CPU-bound; only the preference,
// pricing, and spend lookups can touch the network, and each is bounded
// by the lookup timeout with a documented fallback.
type Engine struct {
	mu       sync.RWMutex
	registry *provider.Registry
	ranker   *rank.Ranker

	weights       rank.Weights
	floors        map[tier.Tier]int
	counter       tokens.Counter
	outputRatio   float64
	lookupTimeout time.Duration

	pricing   pricing.Source
	prefs     workspace.Store
	spend     SpendSource
	tracker   *hitrate.Tracker
	evaluator *escalate.Evaluator
	audit     AuditSink
	stats     *Stats
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithPricingSource sets where the engine fetches model rates. Defaults
// to the built-in static table.
func WithPricingSource(src pricing.Source) EngineOption {
	return func(e *Engine) {
		if src != nil {
			e.pricing = src
		}
	}
}

// WithPreferenceStore sets where workspace preferences load from.
// Without a store every workspace runs unconstrained.
func WithPreferenceStore(store workspace.Store) EngineOption {
	return func(e *Engine) { e.prefs = store }
}

// WithSpendSource sets the accounting source for monthly budget checks.
func WithSpendSource(src SpendSource) EngineOption {
	return func(e *Engine) { e.spend = src }
}

// WithAuditSink sets where routing and escalation decisions are
// emitted. Defaults to discarding them.
func WithAuditSink(sink AuditSink) EngineOption {
	return func(e *Engine) {
		if sink != nil {
			e.audit = sink
		}
	}
}

// WithTokenCounter sets the token estimator used for usage projection.
func WithTokenCounter(c tokens.Counter) EngineOption {
	return func(e *Engine) {
		if c != nil {
			e.counter = c
		}
	}
}

// WithHitRateTracker sets the cache-outcome history. Useful when the
// tracker outlives the engine across registry swaps.
func WithHitRateTracker(t *hitrate.Tracker) EngineOption {
	return func(e *Engine) {
		if t != nil {
			e.tracker = t
		}
	}
}

// WithEscalationEvaluator replaces the escalation policy.
func WithEscalationEvaluator(ev *escalate.Evaluator) EngineOption {
	return func(e *Engine) {
		if ev != nil {
			e.evaluator = ev
		}
	}
}

// WithQualityFloors replaces the per-tier minimum model quality.
func WithQualityFloors(floors map[tier.Tier]int) EngineOption {
	return func(e *Engine) {
		if floors != nil {
			e.floors = floors
		}
	}
}

// WithRankWeights replaces the provider scoring weights.
func WithRankWeights(w rank.Weights) EngineOption {
	return func(e *Engine) { e.weights = w }
}

// WithOutputRatio sets the assumed output-to-input token ratio for
// usage projection.
func WithOutputRatio(ratio float64) EngineOption {
	return func(e *Engine) {
		if ratio > 0 {
			e.outputRatio = ratio
		}
	}
}

// WithLookupTimeout bounds each external lookup on the request path.
func WithLookupTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.lookupTimeout = d
		}
	}
}

// NewEngine creates an engine over the given provider registry.
func NewEngine(registry *provider.Registry, opts ...EngineOption) (*Engine, error) {
	if registry == nil {
		return nil, errors.New("engine requires a provider registry")
	}

	e := &Engine{
		registry:      registry,
		weights:       rank.DefaultWeights,
		floors:        DefaultQualityFloors,
		counter:       tokens.NewBlendedCounter(),
		outputRatio:   tokens.DefaultOutputRatio,
		lookupTimeout: DefaultLookupTimeout,
		pricing:       pricing.DefaultSource(),
		tracker:       hitrate.NewTracker(),
		evaluator:     escalate.NewEvaluator(),
		audit:         NopSink{},
		stats:         NewStats(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.ranker = rank.NewRanker(registry, rank.WithWeights(e.weights))

	return e, nil
}

// Resolve routes one request: it resolves the capability tier, ranks
// the configured providers, projects costs with the cache-hit estimate,
// and enforces the workspace budget. The returned error is a *Rejection
// for every refusal the caller can act on.
func (e *Engine) Resolve(ctx context.Context, req Request) (*Decision, error) {
	pref := e.loadPreference(ctx, req.WorkspaceID)

	hint := req.TaskHint
	if hint != "" && !hint.Valid() {
		slog.Warn("ignoring unknown task hint", slog.String("hint", string(hint)))
		hint = ""
	}

	resolved, source, reason, rej := e.resolveTier(req, pref, hint)
	if rej != nil {
		return nil, rej
	}

	categories := detectCategories(req.Prompt, req.ContextTokens, hint)
	usage := tokens.EstimateUsage(e.counter, req.Prompt, req.ContextTokens, e.outputRatio)

	preferred := req.PreferredProviders
	if len(preferred) == 0 && pref != nil {
		preferred = pref.PreferredProviders
	}

	e.mu.RLock()
	ranker := e.ranker
	e.mu.RUnlock()

	candidates, err := ranker.Rank(rank.Input{
		Categories:           categories,
		Tier:                 resolved,
		EstimatedInputTokens: usage.Input,
		QualityFloor:         e.floors[resolved],
		ConfiguredProviders:  req.ConfiguredProviders,
		PreferredProviders:   preferred,
		RequireTools:         req.RequiresTools,
	})
	if err != nil {
		if errors.Is(err, rank.ErrNoProvidersConfigured) {
			return nil, &Rejection{
				Code:    RejectNoProvidersConfigured,
				Message: "no providers configured for this caller",
				err:     err,
			}
		}
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, &Rejection{
			Code: RejectNoEligibleModel,
			Message: fmt.Sprintf("no configured provider has an eligible model at tier %s (quality floor %d)",
				resolved, e.floors[resolved]),
		}
	}

	fp := hitrate.Fingerprint(req.Prompt)
	prob := e.tracker.Predict(fp, req.WorkspaceID)

	costs := e.price(ctx, candidates, usage, prob)
	winner := pickCandidate(candidates, costs)

	chosen := candidates[winner]
	full, effective := costs[winner].full, costs[winner].effective
	if costs[winner].unknown {
		full, effective = 0, 0
	}

	decision := &Decision{
		ID:                  uuid.NewString(),
		WorkspaceID:         req.WorkspaceID,
		Tier:                resolved,
		TierSource:          source,
		Reason:              reason,
		ProviderID:          chosen.Provider.ID,
		ModelID:             chosen.Models[0].ID,
		Categories:          categories,
		Usage:               usage,
		Fingerprint:         fp,
		CacheHitProbability: prob,
		EffectiveCents:      effective,
		FullCents:           full,
		CacheDiscount:       pricing.Discount(effective, full),
		Candidates:          scoreboard(candidates, costs),
		CreatedAt:           time.Now().UTC(),
	}

	if rej := e.checkBudget(ctx, decision, pref); rej != nil {
		return nil, rej
	}

	e.stats.record(decision)
	e.audit.RoutingDecided(ctx, decision)

	return decision, nil
}

// ReportOutcome feeds an executed request's result back into the
// engine: the cache outcome updates the hit-rate history, and the
// quality and failure signals drive the escalation decision.
func (e *Engine) ReportOutcome(ctx context.Context, out Outcome) escalate.Decision {
	if out.Fingerprint != "" {
		e.tracker.Record(out.Fingerprint, out.WorkspaceID, out.WasCached)
	}

	pref := e.loadPreference(ctx, out.WorkspaceID)
	decision := e.evaluator.Evaluate(escalate.Signal{
		Tier:          out.Tier,
		Quality:       out.Quality,
		UpstreamError: out.UpstreamError,
		RateLimited:   out.RateLimited,
	}, pref.AutoEscalate())

	e.audit.EscalationDecided(ctx, out.WorkspaceID, decision)

	return decision
}

// SwapRegistry atomically replaces the provider catalog. In-flight
// requests finish against the registry they started with.
func (e *Engine) SwapRegistry(registry *provider.Registry) error {
	if registry == nil {
		return errors.New("nil registry")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.registry = registry
	e.ranker = rank.NewRanker(registry, rank.WithWeights(e.weights))
	return nil
}

// Registry returns the current provider catalog.
func (e *Engine) Registry() *provider.Registry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry
}

// Stats returns the engine's routing statistics.
func (e *Engine) Stats() *Stats {
	return e.stats
}

// resolveTier applies the precedence chain: explicit override first,
// then the workspace default, then classification clamped into the
// preference bounds. The returned reason restates the outcome in plain
// words for the decision record.
func (e *Engine) resolveTier(req Request, pref *workspace.Preference, hint task.Category) (tier.Tier, TierSource, string, *Rejection) {
	if req.TierOverride != "" {
		t, err := tier.Parse(req.TierOverride)
		if err != nil {
			return 0, "", "", &Rejection{
				Code:    RejectInvalidOverride,
				Message: fmt.Sprintf("unknown tier override %q", req.TierOverride),
				err:     err,
			}
		}
		return t, TierSourceOverride, fmt.Sprintf("tier %s forced by request override", t), nil
	}

	if t, ok := pref.Default(); ok {
		return t, TierSourceWorkspaceDefault, fmt.Sprintf("tier %s set by workspace default", t), nil
	}

	classified := classify.Classify(req.Prompt, hint)
	clamped := pref.ClampTier(classified)
	if clamped != classified {
		return clamped, TierSourceClamped,
			fmt.Sprintf("classified as %s, clamped to %s by workspace tier bounds", classified, clamped), nil
	}
	return classified, TierSourceClassified, fmt.Sprintf("tier %s classified from the prompt", classified), nil
}

// detectCategories runs detection and leads with a valid caller hint.
// The generic fallback drops out when the hint names a real category.
func detectCategories(prompt string, contextTokens int, hint task.Category) []task.Category {
	detected := task.Detect(prompt, contextTokens)
	if hint == "" {
		return detected
	}

	out := []task.Category{hint}
	for _, c := range detected {
		if c == hint {
			continue
		}
		if c == task.General && hint != task.General {
			continue
		}
		out = append(out, c)
	}
	return out
}

type candidateCost struct {
	full      float64
	effective float64
	unknown   bool
}

// price projects each candidate's cost under the current hit-rate
// estimate. A pricing failure marks the candidate unknown rather than
// failing the request.
func (e *Engine) price(ctx context.Context, candidates []rank.Candidate, usage tokens.Usage, prob float64) []candidateCost {
	out := make([]candidateCost, len(candidates))
	for i, c := range candidates {
		model := c.Models[0]
		rates, err := lookup(ctx, e.lookupTimeout, func(ctx context.Context) (pricing.Pricing, error) {
			return e.pricing.Current(ctx, c.Provider.ID, model.ID)
		})
		if err != nil {
			slog.Warn("pricing unavailable for candidate",
				slog.String("provider", c.Provider.ID),
				slog.String("model", model.ID),
				slog.Any("error", err))
			out[i] = candidateCost{unknown: true}
			continue
		}
		out[i] = candidateCost{
			full:      rates.Cents(usage.Input, usage.Output),
			effective: rates.EffectiveCents(usage.Input, usage.Output, prob),
		}
	}
	return out
}

// pickCandidate returns the index of the winning candidate: the top
// score wins, and candidates within scoreTieEpsilon of it are decided
// by cheaper effective cost. Unknown costs lose ties, and equal costs
// keep the earlier (registration-order) candidate.
func pickCandidate(candidates []rank.Candidate, costs []candidateCost) int {
	best := 0
	top := candidates[0].Score
	for i := 1; i < len(candidates); i++ {
		if top-candidates[i].Score > scoreTieEpsilon {
			break
		}
		if cheaper(costs[i], costs[best]) {
			best = i
		}
	}
	return best
}

func cheaper(a, b candidateCost) bool {
	if a.unknown {
		return false
	}
	if b.unknown {
		return true
	}
	return a.effective < b.effective
}

func scoreboard(candidates []rank.Candidate, costs []candidateCost) []CandidateScore {
	out := make([]CandidateScore, len(candidates))
	for i, c := range candidates {
		cents := costs[i].effective
		if costs[i].unknown {
			cents = -1
		}
		out[i] = CandidateScore{
			ProviderID:     c.Provider.ID,
			ModelID:        c.Models[0].ID,
			Score:          c.Score,
			Breakdown:      c.Breakdown,
			EffectiveCents: cents,
		}
	}
	return out
}

// loadPreference fetches the workspace preference under the lookup
// timeout. Any failure degrades to no constraints.
func (e *Engine) loadPreference(ctx context.Context, workspaceID string) *workspace.Preference {
	if e.prefs == nil || workspaceID == "" {
		return nil
	}

	pref, err := lookup(ctx, e.lookupTimeout, func(ctx context.Context) (*workspace.Preference, error) {
		return e.prefs.Load(ctx, workspaceID)
	})
	if err != nil {
		if !errors.Is(err, workspace.ErrNotFound) {
			slog.Warn("preference load failed, proceeding without constraints",
				slog.String("workspace", workspaceID),
				slog.Any("error", err))
		}
		return nil
	}
	return pref
}

// checkBudget applies the workspace ceilings to the projected cost.
func (e *Engine) checkBudget(ctx context.Context, d *Decision, pref *workspace.Preference) *Rejection {
	if pref == nil {
		return nil
	}

	var monthSpend *float64
	if pref.MonthlyBudgetCents > 0 && e.spend != nil {
		spend, err := lookup(ctx, e.lookupTimeout, func(ctx context.Context) (float64, error) {
			return e.spend.MonthToDateCents(ctx, d.WorkspaceID)
		})
		if err != nil {
			slog.Warn("spend lookup failed, monthly budget check degraded",
				slog.String("workspace", d.WorkspaceID),
				slog.Any("error", err))
		} else {
			monthSpend = &spend
		}
	}

	violation := budget.Check(d.EffectiveCents, monthSpend, pref)
	if violation == nil {
		return nil
	}
	return &Rejection{
		Code:       RejectBudgetExceeded,
		Message:    violation.Error(),
		Constraint: string(violation.Metric),
		Current:    violation.CurrentCents,
		Limit:      violation.LimitCents,
		err:        violation,
	}
}

// lookup runs fn under the timeout in its own goroutine, so a source
// that ignores cancellation cannot block the request path.
func lookup[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		select {
		case ch <- result{v, err}:
		case <-ctx.Done():
		}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}
