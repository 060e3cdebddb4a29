package rank

import (
	"sort"

	"github.com/randalmurphal/routekit/provider"
)

// Model preference points. Exact tier match beats a stronger-tier
// fallback, which beats context fit, which beats specialization, so the
// ordering is total and no combination of weaker signals overrides a
// stronger one.
const (
	pointsExactTier   = 8
	pointsHigherTier  = 4
	pointsContextFits = 2
	pointsSpecialized = 1
)

// candidateModels returns the provider's models that clear the quality
// floor, ordered by preference: models at the resolved tier first, then
// stronger tiers, then context-window fit and specialization, with the
// provider's primary ordering breaking ties.
func candidateModels(rec provider.Record, input Input) []provider.Model {
	var eligible []provider.Model
	for _, m := range rec.Models {
		if input.QualityFloor > 0 && m.Quality < input.QualityFloor {
			continue
		}
		eligible = append(eligible, m)
	}
	if len(eligible) < 2 {
		return eligible
	}

	points := make(map[string]int, len(eligible))
	for _, m := range eligible {
		points[m.ID] = modelPoints(m, input)
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return points[eligible[i].ID] > points[eligible[j].ID]
	})
	return eligible
}

func modelPoints(m provider.Model, input Input) int {
	points := 0
	switch {
	case m.Tier == input.Tier:
		points += pointsExactTier
	case m.Tier > input.Tier:
		points += pointsHigherTier
	}
	if input.EstimatedInputTokens > 0 && m.ContextWindow >= input.EstimatedInputTokens {
		points += pointsContextFits
	}
	if m.Specialization != "" {
		for _, cat := range input.Categories {
			if cat == m.Specialization {
				points += pointsSpecialized
				break
			}
		}
	}
	return points
}
