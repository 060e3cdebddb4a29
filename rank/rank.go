package rank

import (
	"errors"
	"sort"

	"github.com/randalmurphal/routekit/provider"
	"github.com/randalmurphal/routekit/task"
	"github.com/randalmurphal/routekit/tier"
)

// ErrNoProvidersConfigured indicates the caller supplied no configured
// providers, so ranking has nothing to choose from. Distinct from a
// non-empty configuration that filtering eliminated.
var ErrNoProvidersConfigured = errors.New("no providers configured")

// Weights are the scoring weights per component. They are tunable
// policy; the defaults are not derived from a formula.
type Weights struct {
	Cost           float64
	Reliability    float64
	TaskMatch      float64
	Specialization float64
}

// DefaultWeights sum to 1 so scores stay comparable across registries.
var DefaultWeights = Weights{
	Cost:           0.3,
	Reliability:    0.2,
	TaskMatch:      0.3,
	Specialization: 0.2,
}

// Per-category scoring increments for the task-match component.
const (
	categoryMatchBonus = 0.4
	generalMatchBonus  = 0.2
)

// ownSpecializationScore is the specialization component granted when a
// provider's own specialization tag matches a requested category but the
// affinity table does not list it.
const ownSpecializationScore = 0.6

// Input describes one ranking request.
type Input struct {
	// Categories are the detected task categories, in relevance order.
	Categories []task.Category

	// Tier is the resolved capability tier; model selection prefers
	// models at this tier.
	Tier tier.Tier

	// EstimatedInputTokens steers model selection toward models whose
	// context window fits. Zero means no signal.
	EstimatedInputTokens int

	// QualityFloor excludes models scored below it. Zero disables the
	// floor.
	QualityFloor int

	// ConfiguredProviders are the provider IDs available to the caller.
	// Only these are eligible.
	ConfiguredProviders []string

	// PreferredProviders narrows candidates when any of them are
	// eligible; an ineffective filter falls back to the full pool.
	PreferredProviders []string

	// RequireTools excludes providers without function-calling support.
	RequireTools bool
}

// Breakdown holds the unweighted score components, each in [0, 1].
type Breakdown struct {
	Cost           float64 `json:"cost"`
	Reliability    float64 `json:"reliability"`
	TaskMatch      float64 `json:"task_match"`
	Specialization float64 `json:"specialization"`
}

// Candidate is one ranked provider with its eligible models in
// preference order.
type Candidate struct {
	Provider  provider.Record  `json:"provider"`
	Score     float64          `json:"score"`
	Breakdown Breakdown        `json:"breakdown"`
	Models    []provider.Model `json:"models"`
}

// Ranker scores providers from a registry against a ranking input.
type Ranker struct {
	registry *provider.Registry
	weights  Weights
	affinity map[task.Category][]string
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithWeights replaces the scoring weights.
func WithWeights(w Weights) Option {
	return func(r *Ranker) { r.weights = w }
}

// WithTaskAffinity replaces the task to preferred-providers table used
// for the specialization component.
func WithTaskAffinity(affinity map[task.Category][]string) Option {
	return func(r *Ranker) {
		if affinity != nil {
			r.affinity = affinity
		}
	}
}

// NewRanker creates a ranker over the given registry with default
// weights and the built-in task affinity table unless overridden.
func NewRanker(registry *provider.Registry, opts ...Option) *Ranker {
	r := &Ranker{
		registry: registry,
		weights:  DefaultWeights,
		affinity: TaskPreferredProviders,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank scores the eligible providers and returns them ordered best
// first, each with its eligible models. Ties keep registry registration
// order. An empty ConfiguredProviders is an error; a configuration that
// filtering eliminated returns an empty list with no error, and the
// caller decides how to report it.
func (r *Ranker) Rank(input Input) ([]Candidate, error) {
	if len(input.ConfiguredProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	configured := toSet(input.ConfiguredProviders)
	preferred := toSet(input.PreferredProviders)

	pool := r.eligible(input, configured)

	// The preferred list is a preference, not a requirement: when it
	// eliminates every candidate, fall back to the unfiltered pool.
	if len(preferred) > 0 {
		narrowed := make([]Candidate, 0, len(pool))
		for _, c := range pool {
			if _, ok := preferred[c.Provider.ID]; ok {
				narrowed = append(narrowed, c)
			}
		}
		if len(narrowed) > 0 {
			pool = narrowed
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})

	return pool, nil
}

// eligible builds scored candidates in registry order, applying the
// hard filters: configured membership, tool support, and the per-tier
// quality floor on models.
func (r *Ranker) eligible(input Input, configured map[string]struct{}) []Candidate {
	var out []Candidate
	for _, rec := range r.registry.All() {
		if _, ok := configured[rec.ID]; !ok {
			continue
		}
		if input.RequireTools && !rec.HasCapability(task.FunctionCalling) {
			continue
		}
		models := candidateModels(rec, input)
		if len(models) == 0 {
			continue
		}

		breakdown := r.scoreProvider(rec, input.Categories)
		out = append(out, Candidate{
			Provider:  rec,
			Score:     r.weighted(breakdown),
			Breakdown: breakdown,
			Models:    models,
		})
	}
	return out
}

// scoreProvider computes the unweighted components for one provider.
func (r *Ranker) scoreProvider(rec provider.Record, categories []task.Category) Breakdown {
	return Breakdown{
		Cost:           clamp01(rec.CostSavingsPercent / 100),
		Reliability:    clamp01(rec.Reliability),
		TaskMatch:      r.taskMatch(rec, categories),
		Specialization: r.specialization(rec, categories),
	}
}

// taskMatch grants a fixed bonus per requested category the provider
// serves, a smaller one for generic chat requests, clamped to 1.
func (r *Ranker) taskMatch(rec provider.Record, categories []task.Category) float64 {
	score := 0.0
	for _, cat := range categories {
		if cat == task.General {
			score += generalMatchBonus
			continue
		}
		if rec.HasCapability(cat) {
			score += categoryMatchBonus
		}
	}
	return clamp01(score)
}

// specialization grants full credit when the affinity table lists the
// provider for a requested category, partial credit when only the
// provider's own specialization tag matches.
func (r *Ranker) specialization(rec provider.Record, categories []task.Category) float64 {
	for _, cat := range categories {
		for _, id := range r.affinity[cat] {
			if id == rec.ID {
				return 1
			}
		}
	}
	if rec.Specialization != "" {
		for _, cat := range categories {
			if cat == rec.Specialization {
				return ownSpecializationScore
			}
		}
	}
	return 0
}

func (r *Ranker) weighted(b Breakdown) float64 {
	return r.weights.Cost*b.Cost +
		r.weights.Reliability*b.Reliability +
		r.weights.TaskMatch*b.TaskMatch +
		r.weights.Specialization*b.Specialization
}

func toSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
