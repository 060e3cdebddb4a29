package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrUnknownModel indicates no pricing entry exists for a provider/model pair.
var ErrUnknownModel = errors.New("no pricing for model")

// DefaultTTL is how long a fetched pricing entry stays fresh.
const DefaultTTL = 5 * time.Minute

// DefaultFetchTimeout bounds a single upstream pricing fetch.
const DefaultFetchTimeout = 2 * time.Second

// Source supplies current pricing for a provider/model pair. Implementations
// may hit the network; callers bound them with a context deadline.
type Source interface {
	Current(ctx context.Context, providerID, modelID string) (Pricing, error)
}

// Key builds the lookup key for a provider/model pair. A modelID of "*"
// denotes a provider-wide default.
func Key(providerID, modelID string) string {
	return providerID + "/" + modelID
}

// StaticSource serves pricing from an in-memory table. Lookup tries the
// exact provider/model key first, then the provider's "*" default.
type StaticSource struct {
	table map[string]Pricing
}

// NewStaticSource creates a source over the given table. The table is
// copied; later mutation of the argument does not affect the source.
func NewStaticSource(table map[string]Pricing) *StaticSource {
	copied := make(map[string]Pricing, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return &StaticSource{table: copied}
}

// Current returns the pricing for the provider/model pair.
func (s *StaticSource) Current(_ context.Context, providerID, modelID string) (Pricing, error) {
	if p, ok := s.table[Key(providerID, modelID)]; ok {
		return p, nil
	}
	if p, ok := s.table[Key(providerID, "*")]; ok {
		return p, nil
	}
	return Pricing{}, fmt.Errorf("%w: %s", ErrUnknownModel, Key(providerID, modelID))
}

// CachingSource wraps a Source with a TTL cache and a per-fetch timeout.
// When a fetch fails or times out and a previously fetched entry exists,
// the stale entry is returned so routing keeps working on last-known-good
// rates.
type CachingSource struct {
	inner   Source
	ttl     time.Duration
	timeout time.Duration

	mu      sync.Mutex
	entries map[string]cachedEntry
}

type cachedEntry struct {
	pricing Pricing
	fetched time.Time
}

// CachingOption configures a CachingSource.
type CachingOption func(*CachingSource)

// WithTTL sets how long a fetched entry stays fresh.
func WithTTL(ttl time.Duration) CachingOption {
	return func(s *CachingSource) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithFetchTimeout bounds each upstream fetch.
func WithFetchTimeout(timeout time.Duration) CachingOption {
	return func(s *CachingSource) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// NewCachingSource wraps inner with caching and timeout handling.
func NewCachingSource(inner Source, opts ...CachingOption) *CachingSource {
	s := &CachingSource{
		inner:   inner,
		ttl:     DefaultTTL,
		timeout: DefaultFetchTimeout,
		entries: make(map[string]cachedEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns fresh pricing when available, refreshing from the
// inner source as needed. On fetch failure it falls back to the last
// successful fetch for the same pair; only a pair never fetched before
// surfaces the error.
func (s *CachingSource) Current(ctx context.Context, providerID, modelID string) (Pricing, error) {
	k := Key(providerID, modelID)

	s.mu.Lock()
	entry, known := s.entries[k]
	s.mu.Unlock()

	if known && time.Since(entry.fetched) < s.ttl {
		return entry.pricing, nil
	}

	p, err := s.fetch(ctx, providerID, modelID)
	if err != nil {
		if known {
			slog.Warn("pricing fetch failed, using last known rates",
				slog.String("provider", providerID),
				slog.String("model", modelID),
				slog.Any("error", err))
			return entry.pricing, nil
		}
		return Pricing{}, fmt.Errorf("fetch pricing for %s: %w", k, err)
	}

	s.mu.Lock()
	s.entries[k] = cachedEntry{pricing: p, fetched: time.Now()}
	s.mu.Unlock()

	return p, nil
}

// fetch runs the inner lookup under the configured timeout. The inner
// source may ignore cancellation, so the call runs in its own goroutine
// and the deadline is enforced here.
func (s *CachingSource) fetch(ctx context.Context, providerID, modelID string) (Pricing, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		pricing Pricing
		err     error
	}
	ch := make(chan result, 1)
	go func() {
		p, err := s.inner.Current(ctx, providerID, modelID)
		select {
		case ch <- result{pricing: p, err: err}:
		case <-ctx.Done():
		}
	}()

	select {
	case <-ctx.Done():
		return Pricing{}, ctx.Err()
	case r := <-ch:
		return r.pricing, r.err
	}
}
