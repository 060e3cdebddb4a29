package route

import "sync"

// ProviderStats aggregates the decisions routed to one provider.
type ProviderStats struct {
	Requests       int
	EffectiveCents float64
	FullCents      float64
}

// Add folds another aggregate into this one.
func (p *ProviderStats) Add(other ProviderStats) {
	p.Requests += other.Requests
	p.EffectiveCents += other.EffectiveCents
	p.FullCents += other.FullCents
}

// SavedCents returns the projected cache savings.
func (p ProviderStats) SavedCents() float64 {
	saved := p.FullCents - p.EffectiveCents
	if saved < 0 {
		return 0
	}
	return saved
}

// Stats tracks routing volume and projected spend per provider. Costs
// are projections from the decisions, not billed amounts.
type Stats struct {
	mu          sync.RWMutex
	perProvider map[string]ProviderStats
}

// NewStats creates an empty tracker.
func NewStats() *Stats {
	return &Stats{perProvider: make(map[string]ProviderStats)}
}

func (s *Stats) record(d *Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agg := s.perProvider[d.ProviderID]
	agg.Requests++
	agg.EffectiveCents += d.EffectiveCents
	agg.FullCents += d.FullCents
	s.perProvider[d.ProviderID] = agg
}

// Provider returns the aggregate for one provider.
func (s *Stats) Provider(id string) ProviderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perProvider[id]
}

// Summary returns a copy of all per-provider aggregates.
func (s *Stats) Summary() map[string]ProviderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]ProviderStats, len(s.perProvider))
	for k, v := range s.perProvider {
		result[k] = v
	}
	return result
}

// Totals returns the aggregate across all providers.
func (s *Stats) Totals() ProviderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total ProviderStats
	for _, agg := range s.perProvider {
		total.Add(agg)
	}
	return total
}

// Reset clears all aggregates.
func (s *Stats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.perProvider = make(map[string]ProviderStats)
}
