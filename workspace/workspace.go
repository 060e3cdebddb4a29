package workspace

import (
	"log/slog"

	"github.com/randalmurphal/routekit/tier"
)

// Preference is a workspace's routing configuration. Every field is
// optional; the zero value constrains nothing. Preferences are owned by
// an external store and only read here.
type Preference struct {
	// DefaultTier pins routing to a tier, overriding classification.
	DefaultTier *tier.Tier `json:"default_tier,omitempty" yaml:"default_tier,omitempty"`

	// MinTier and MaxTier clamp the classified tier. Either side may be
	// set alone.
	MinTier *tier.Tier `json:"min_tier,omitempty" yaml:"min_tier,omitempty"`
	MaxTier *tier.Tier `json:"max_tier,omitempty" yaml:"max_tier,omitempty"`

	// PreferredProviders narrows candidate ranking to these provider
	// IDs when any of them are available.
	PreferredProviders []string `json:"preferred_providers,omitempty" yaml:"preferred_providers,omitempty"`

	// MaxRequestCents rejects any single request projected to cost
	// more. Zero means no ceiling.
	MaxRequestCents float64 `json:"max_request_cents,omitempty" yaml:"max_request_cents,omitempty"`

	// MonthlyBudgetCents rejects requests once month-to-date spend
	// reaches it. Zero means no ceiling.
	MonthlyBudgetCents float64 `json:"monthly_budget_cents,omitempty" yaml:"monthly_budget_cents,omitempty"`

	// AutoEscalation disables escalation when explicitly false. Unset
	// means enabled.
	AutoEscalation *bool `json:"auto_escalation,omitempty" yaml:"auto_escalation,omitempty"`
}

// ClampTier restricts t to the preference's tier bounds. Invalid bounds
// are logged and ignored rather than failing the request: an unknown
// tier value drops that side, and inverted bounds drop both. A nil
// preference clamps nothing.
func (p *Preference) ClampTier(t tier.Tier) tier.Tier {
	if p == nil {
		return t
	}

	lo, hi := tier.Min, tier.Max
	if p.MinTier != nil {
		if p.MinTier.Valid() {
			lo = *p.MinTier
		} else {
			slog.Warn("ignoring invalid min tier bound", slog.Int("value", int(*p.MinTier)))
		}
	}
	if p.MaxTier != nil {
		if p.MaxTier.Valid() {
			hi = *p.MaxTier
		} else {
			slog.Warn("ignoring invalid max tier bound", slog.Int("value", int(*p.MaxTier)))
		}
	}
	if lo > hi {
		slog.Warn("ignoring inverted tier bounds",
			slog.String("min", lo.String()),
			slog.String("max", hi.String()))
		return t
	}
	return t.Clamp(lo, hi)
}

// Default returns the pinned default tier, or ok=false when unset or
// invalid. An invalid value is logged and treated as unset.
func (p *Preference) Default() (tier.Tier, bool) {
	if p == nil || p.DefaultTier == nil {
		return 0, false
	}
	if !p.DefaultTier.Valid() {
		slog.Warn("ignoring invalid default tier", slog.Int("value", int(*p.DefaultTier)))
		return 0, false
	}
	return *p.DefaultTier, true
}

// AutoEscalate reports whether escalation is allowed. Only an explicit
// false disables it.
func (p *Preference) AutoEscalate() bool {
	if p == nil || p.AutoEscalation == nil {
		return true
	}
	return *p.AutoEscalation
}
