// Package provider defines the provider catalog the routing engine
// selects from.
//
// A Record describes one backend provider: its cost class, capability
// set, specialization, reliability, and ordered model list. Records are
// assembled into an immutable Registry that is validated once at
// construction and injected wherever ranking needs it. Reconfiguration
// builds a new Registry and swaps it in whole; nothing mutates a registry
// in place.
package provider

import (
	"fmt"

	"github.com/randalmurphal/routekit/task"
	"github.com/randalmurphal/routekit/tier"
)

// Record describes a backend provider. Records are treated as immutable
// once registered.
type Record struct {
	// ID is the stable provider identifier ("anthropic", "deepseek").
	ID string `json:"id" yaml:"id" toml:"id"`

	// Name is the human-readable provider name.
	Name string `json:"name" yaml:"name" toml:"name"`

	// CostTier is the coarse priority class: 1 = premium, higher numbers
	// are cheaper classes.
	CostTier int `json:"cost_tier" yaml:"cost_tier" toml:"cost_tier"`

	// CostSavingsPercent is the percentage saved relative to the premium
	// baseline, in [0, 100]. The premium baseline itself is 0.
	CostSavingsPercent float64 `json:"cost_savings_percent" yaml:"cost_savings_percent" toml:"cost_savings_percent"`

	// Capabilities lists the task categories the provider serves well,
	// plus generic capabilities such as task.Chat and task.FunctionCalling.
	Capabilities []task.Category `json:"capabilities" yaml:"capabilities" toml:"capabilities"`

	// Specialization is the single category the provider is best known
	// for. Optional.
	Specialization task.Category `json:"specialization,omitempty" yaml:"specialization,omitempty" toml:"specialization,omitempty"`

	// Reliability is the observed reliability score in [0, 1].
	Reliability float64 `json:"reliability" yaml:"reliability" toml:"reliability"`

	// Models is the ordered model list; the first entry is the provider's
	// primary model.
	Models []Model `json:"models" yaml:"models" toml:"models"`
}

// Model describes one model offered by a provider.
type Model struct {
	// ID is the model identifier as the provider names it.
	ID string `json:"id" yaml:"id" toml:"id"`

	// Tier is the capability tier this model serves.
	Tier tier.Tier `json:"tier" yaml:"tier" toml:"tier"`

	// ContextWindow is the maximum context size in tokens.
	ContextWindow int `json:"context_window" yaml:"context_window" toml:"context_window"`

	// Quality is the model quality score in [0, 100], compared against
	// per-tier quality floors during selection.
	Quality int `json:"quality" yaml:"quality" toml:"quality"`

	// Specialization marks a task-specialized variant ("deepseek-coder").
	// Optional.
	Specialization task.Category `json:"specialization,omitempty" yaml:"specialization,omitempty" toml:"specialization,omitempty"`
}

// HasCapability returns true if the provider lists the category.
func (r *Record) HasCapability(c task.Category) bool {
	for _, cap := range r.Capabilities {
		if cap == c {
			return true
		}
	}
	return false
}

// PrimaryModel returns the provider's first model. The zero Model is
// returned when the record has no models; validated records always have
// at least one.
func (r *Record) PrimaryModel() Model {
	if len(r.Models) == 0 {
		return Model{}
	}
	return r.Models[0]
}

// Validate checks a single record for structural problems.
func (r *Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: empty provider id", ErrInvalidRecord)
	}
	if r.Reliability < 0 || r.Reliability > 1 {
		return fmt.Errorf("%w: provider %q reliability %.2f outside [0,1]", ErrInvalidRecord, r.ID, r.Reliability)
	}
	if r.CostSavingsPercent < 0 || r.CostSavingsPercent > 100 {
		return fmt.Errorf("%w: provider %q cost savings %.1f%% outside [0,100]", ErrInvalidRecord, r.ID, r.CostSavingsPercent)
	}
	if len(r.Models) == 0 {
		return fmt.Errorf("%w: provider %q has no models", ErrInvalidRecord, r.ID)
	}
	for _, c := range r.Capabilities {
		if !c.Valid() {
			return fmt.Errorf("%w: provider %q capability %q unknown", ErrInvalidRecord, r.ID, c)
		}
	}
	if r.Specialization != "" && !r.Specialization.Valid() {
		return fmt.Errorf("%w: provider %q specialization %q unknown", ErrInvalidRecord, r.ID, r.Specialization)
	}
	seen := make(map[string]struct{}, len(r.Models))
	for i, m := range r.Models {
		if m.ID == "" {
			return fmt.Errorf("%w: provider %q model %d has empty id", ErrInvalidRecord, r.ID, i)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("%w: provider %q duplicate model id %q", ErrInvalidRecord, r.ID, m.ID)
		}
		seen[m.ID] = struct{}{}
		if !m.Tier.Valid() {
			return fmt.Errorf("%w: provider %q model %q has invalid tier %d", ErrInvalidRecord, r.ID, m.ID, m.Tier)
		}
		if m.Quality < 0 || m.Quality > 100 {
			return fmt.Errorf("%w: provider %q model %q quality %d outside [0,100]", ErrInvalidRecord, r.ID, m.ID, m.Quality)
		}
		if m.ContextWindow < 0 {
			return fmt.Errorf("%w: provider %q model %q negative context window", ErrInvalidRecord, r.ID, m.ID)
		}
		if m.Specialization != "" && !m.Specialization.Valid() {
			return fmt.Errorf("%w: provider %q model %q specialization %q unknown", ErrInvalidRecord, r.ID, m.ID, m.Specialization)
		}
	}
	return nil
}
