package catalog

import (
	"fmt"
	"math"

	"github.com/randalmurphal/routekit/rank"
	"github.com/randalmurphal/routekit/tier"
)

// weightSumEpsilon absorbs float noise when checking that configured
// weights sum to 1.
const weightSumEpsilon = 1e-6

// Policy is the optional tuning section of a catalog: provider scoring
// weights, the minimum model quality admitted per tier, and the response
// quality each tier must reach to avoid escalation. Every field is
// optional; omitted values keep the engine defaults.
type Policy struct {
	// Weights replace the provider scoring weights. When present, the
	// four components must sum to 1.
	Weights *Weights `json:"weights,omitempty" yaml:"weights,omitempty" toml:"weights,omitempty"`

	// QualityFloors is the minimum admitted model quality per tier,
	// keyed by tier name. Models below the floor are skipped even when
	// cheaper.
	QualityFloors map[string]int `json:"quality_floors,omitempty" yaml:"quality_floors,omitempty" toml:"quality_floors,omitempty"`

	// EscalationThresholds is the minimum acceptable response quality
	// per tier, keyed by tier name. Scored responses below the
	// threshold escalate one tier up.
	EscalationThresholds map[string]int `json:"escalation_thresholds,omitempty" yaml:"escalation_thresholds,omitempty" toml:"escalation_thresholds,omitempty"`
}

// Weights mirrors the provider scoring weights for catalog files.
type Weights struct {
	Cost           float64 `json:"cost" yaml:"cost" toml:"cost" validate:"gte=0,lte=1"`
	Reliability    float64 `json:"reliability" yaml:"reliability" toml:"reliability" validate:"gte=0,lte=1"`
	TaskMatch      float64 `json:"task_match" yaml:"task_match" toml:"task_match" validate:"gte=0,lte=1"`
	Specialization float64 `json:"specialization" yaml:"specialization" toml:"specialization" validate:"gte=0,lte=1"`
}

// RankWeights converts the configured weights. The bool is false when
// the weights section is absent.
func (p *Policy) RankWeights() (rank.Weights, bool) {
	if p == nil || p.Weights == nil {
		return rank.Weights{}, false
	}
	return rank.Weights{
		Cost:           p.Weights.Cost,
		Reliability:    p.Weights.Reliability,
		TaskMatch:      p.Weights.TaskMatch,
		Specialization: p.Weights.Specialization,
	}, true
}

// FloorsByTier returns the quality floors keyed by tier, nil when the
// section is absent.
func (p *Policy) FloorsByTier() map[tier.Tier]int {
	if p == nil {
		return nil
	}
	return tierScores(p.QualityFloors)
}

// ThresholdsByTier returns the escalation thresholds keyed by tier, nil
// when the section is absent.
func (p *Policy) ThresholdsByTier() map[tier.Tier]int {
	if p == nil {
		return nil
	}
	return tierScores(p.EscalationThresholds)
}

func (p *Policy) validatePolicy() error {
	if p == nil {
		return nil
	}
	if p.Weights != nil {
		sum := p.Weights.Cost + p.Weights.Reliability + p.Weights.TaskMatch + p.Weights.Specialization
		if math.Abs(sum-1) > weightSumEpsilon {
			return fmt.Errorf("policy weights sum to %v, want 1", sum)
		}
	}
	if err := validTierScores("quality_floors", p.QualityFloors); err != nil {
		return err
	}
	return validTierScores("escalation_thresholds", p.EscalationThresholds)
}

func validTierScores(section string, scores map[string]int) error {
	for name, score := range scores {
		if _, err := tier.Parse(name); err != nil {
			return fmt.Errorf("policy %s: %w", section, err)
		}
		if score < 0 || score > 100 {
			return fmt.Errorf("policy %s[%s]: score %d out of range [0, 100]", section, name, score)
		}
	}
	return nil
}

// tierScores converts validated tier-name keys; unknown names are
// skipped rather than guessed at.
func tierScores(scores map[string]int) map[tier.Tier]int {
	if len(scores) == 0 {
		return nil
	}
	out := make(map[tier.Tier]int, len(scores))
	for name, score := range scores {
		t, err := tier.Parse(name)
		if err != nil {
			continue
		}
		out[t] = score
	}
	return out
}
