package provider

import (
	"fmt"
)

// Registry is an immutable, ordered collection of provider records.
//
// Registries are constructed once, validated exhaustively, and then only
// read. Registration order is preserved and used as the deterministic
// tie-break during ranking. To reconfigure, build a new Registry and
// replace the old one atomically at the point of use.
type Registry struct {
	records []Record
	byID    map[string]int
}

// NewRegistry builds a registry from the given records, validating each
// one. Duplicate IDs are rejected.
func NewRegistry(records ...Record) (*Registry, error) {
	reg := &Registry{
		records: make([]Record, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("register provider: %w", err)
		}
		if _, exists := reg.byID[rec.ID]; exists {
			return nil, fmt.Errorf("register provider: %w: duplicate id %q", ErrInvalidRecord, rec.ID)
		}
		reg.byID[rec.ID] = len(reg.records)
		reg.records = append(reg.records, rec)
	}
	return reg, nil
}

// MustNewRegistry builds a registry, panicking on validation errors.
// Use only with static catalogs known to be valid (e.g., in tests).
func MustNewRegistry(records ...Record) *Registry {
	reg, err := NewRegistry(records...)
	if err != nil {
		panic(fmt.Sprintf("provider.MustNewRegistry: %v", err))
	}
	return reg
}

// Get returns the record for the given provider ID.
func (g *Registry) Get(id string) (*Record, bool) {
	idx, ok := g.byID[id]
	if !ok {
		return nil, false
	}
	return &g.records[idx], true
}

// Lookup returns the record for the given provider ID, or
// ErrUnknownProvider.
func (g *Registry) Lookup(id string) (*Record, error) {
	rec, ok := g.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
	return rec, nil
}

// Order returns the registration index for a provider ID, used for
// deterministic tie-breaking. Unknown IDs sort last.
func (g *Registry) Order(id string) int {
	if idx, ok := g.byID[id]; ok {
		return idx
	}
	return len(g.records)
}

// All returns the records in registration order. The slice is a copy;
// the records it holds are shared and must not be mutated.
func (g *Registry) All() []Record {
	out := make([]Record, len(g.records))
	copy(out, g.records)
	return out
}

// IDs returns the provider IDs in registration order.
func (g *Registry) IDs() []string {
	ids := make([]string, len(g.records))
	for i, rec := range g.records {
		ids[i] = rec.ID
	}
	return ids
}

// Len returns the number of registered providers.
func (g *Registry) Len() int {
	return len(g.records)
}
