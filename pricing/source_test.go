package pricing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu      sync.Mutex
	calls   int
	pricing Pricing
	err     error
	delay   time.Duration
}

func (f *fakeSource) Current(ctx context.Context, providerID, modelID string) (Pricing, error) {
	f.mu.Lock()
	f.calls++
	pricing, err, delay := f.pricing, f.err, f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Pricing{}, ctx.Err()
		}
	}
	return pricing, err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeSource) set(pricing Pricing, err error) {
	f.mu.Lock()
	f.pricing = pricing
	f.err = err
	f.mu.Unlock()
}

func TestStaticSource_Current(t *testing.T) {
	src := NewStaticSource(map[string]Pricing{
		"acme/fast":  {InputPerMillion: 0.10, OutputPerMillion: 0.40},
		"acme/*":     {InputPerMillion: 1.00, OutputPerMillion: 2.00},
		"other/only": {InputPerMillion: 3.00, OutputPerMillion: 9.00},
	})

	tests := []struct {
		name     string
		provider string
		model    string
		expected Pricing
		wantErr  bool
	}{
		{
			name:     "exact match",
			provider: "acme",
			model:    "fast",
			expected: Pricing{InputPerMillion: 0.10, OutputPerMillion: 0.40},
		},
		{
			name:     "wildcard fallback",
			provider: "acme",
			model:    "unlisted",
			expected: Pricing{InputPerMillion: 1.00, OutputPerMillion: 2.00},
		},
		{
			name:     "no wildcard for provider",
			provider: "other",
			model:    "unlisted",
			wantErr:  true,
		},
		{
			name:     "unknown provider",
			provider: "nobody",
			model:    "anything",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.Current(context.Background(), tt.provider, tt.model)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownModel) {
					t.Fatalf("expected ErrUnknownModel, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Current(%s, %s) = %+v, expected %+v", tt.provider, tt.model, got, tt.expected)
			}
		})
	}
}

func TestStaticSource_CopiesTable(t *testing.T) {
	table := map[string]Pricing{"acme/fast": {InputPerMillion: 0.10, OutputPerMillion: 0.40}}
	src := NewStaticSource(table)

	table["acme/fast"] = Pricing{InputPerMillion: 99, OutputPerMillion: 99}

	got, err := src.Current(context.Background(), "acme", "fast")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.InputPerMillion != 0.10 {
		t.Errorf("source saw mutated table: %+v", got)
	}
}

func TestCachingSource_ServesFreshFromCache(t *testing.T) {
	inner := &fakeSource{pricing: Pricing{InputPerMillion: 1, OutputPerMillion: 2}}
	src := NewCachingSource(inner)

	for n := 0; n < 3; n++ {
		got, err := src.Current(context.Background(), "acme", "fast")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.InputPerMillion != 1 {
			t.Errorf("unexpected pricing: %+v", got)
		}
	}

	if calls := inner.callCount(); calls != 1 {
		t.Errorf("inner source called %d times, expected 1", calls)
	}
}

func TestCachingSource_FallsBackToLastKnownGood(t *testing.T) {
	inner := &fakeSource{pricing: Pricing{InputPerMillion: 1, OutputPerMillion: 2}}
	src := NewCachingSource(inner, WithTTL(time.Nanosecond))

	if _, err := src.Current(context.Background(), "acme", "fast"); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}

	// Entry is stale immediately and the next fetch fails.
	inner.set(Pricing{}, errors.New("upstream down"))
	time.Sleep(time.Millisecond)

	got, err := src.Current(context.Background(), "acme", "fast")
	if err != nil {
		t.Fatalf("expected last-known-good fallback, got error: %v", err)
	}
	if got.InputPerMillion != 1 {
		t.Errorf("expected cached rates, got %+v", got)
	}
}

func TestCachingSource_ErrorWhenNeverFetched(t *testing.T) {
	inner := &fakeSource{err: errors.New("upstream down")}
	src := NewCachingSource(inner)

	if _, err := src.Current(context.Background(), "acme", "fast"); err == nil {
		t.Fatal("expected error when no prior fetch exists")
	}
}

func TestCachingSource_RefetchesAfterTTL(t *testing.T) {
	inner := &fakeSource{pricing: Pricing{InputPerMillion: 1, OutputPerMillion: 2}}
	src := NewCachingSource(inner, WithTTL(time.Nanosecond))

	if _, err := src.Current(context.Background(), "acme", "fast"); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}

	inner.set(Pricing{InputPerMillion: 5, OutputPerMillion: 10}, nil)
	time.Sleep(time.Millisecond)

	got, err := src.Current(context.Background(), "acme", "fast")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.InputPerMillion != 5 {
		t.Errorf("expected refreshed rates, got %+v", got)
	}
}

func TestCachingSource_TimeoutFallsBackToStale(t *testing.T) {
	inner := &fakeSource{pricing: Pricing{InputPerMillion: 1, OutputPerMillion: 2}}
	src := NewCachingSource(inner, WithTTL(time.Nanosecond), WithFetchTimeout(10*time.Millisecond))

	if _, err := src.Current(context.Background(), "acme", "fast"); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}

	// Slow upstream: the fetch times out, the stale entry survives.
	inner.mu.Lock()
	inner.delay = time.Second
	inner.mu.Unlock()
	time.Sleep(time.Millisecond)

	start := time.Now()
	got, err := src.Current(context.Background(), "acme", "fast")
	if err != nil {
		t.Fatalf("expected stale fallback after timeout, got error: %v", err)
	}
	if got.InputPerMillion != 1 {
		t.Errorf("expected cached rates, got %+v", got)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("fetch was not bounded by timeout, took %v", elapsed)
	}
}

func TestKey(t *testing.T) {
	if got := Key("acme", "fast"); got != "acme/fast" {
		t.Errorf("Key = %q, expected %q", got, "acme/fast")
	}
}
