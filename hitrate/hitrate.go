package hitrate

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zeebo/xxh3"
)

// DefaultAlpha is the smoothing factor for the hit-rate estimate. Each
// observation moves the estimate 20% of the way toward the outcome.
const DefaultAlpha = 0.2

// DefaultCapacity bounds how many (fingerprint, workspace) pairs the
// tracker remembers before evicting the least recently used.
const DefaultCapacity = 4096

// fingerprintPrefixBytes is how much leading prompt content feeds the
// fingerprint. Provider prompt caches match on prefixes, so only the
// head of the prompt is relevant for correlating repeats.
const fingerprintPrefixBytes = 512

// Fingerprint derives a stable identifier from a prompt's leading
// content. Prompts sharing the same first 512 bytes share a fingerprint.
func Fingerprint(prompt string) string {
	if len(prompt) > fingerprintPrefixBytes {
		prompt = prompt[:fingerprintPrefixBytes]
	}
	return fmt.Sprintf("%016x", xxh3.HashString(prompt))
}

// Tracker keeps a rolling cache-hit-probability estimate per
// (fingerprint, workspace) pair. Estimates are exponentially weighted
// moving averages of observed outcomes, bounded in memory by an LRU
// cache. Safe for concurrent use.
type Tracker struct {
	alpha float64

	mu        sync.Mutex
	estimates *lru.Cache[string, float64]
}

// Option configures a Tracker.
type Option func(*trackerConfig)

type trackerConfig struct {
	alpha    float64
	capacity int
}

// WithAlpha sets the EWMA smoothing factor. Values outside (0, 1] are
// ignored.
func WithAlpha(alpha float64) Option {
	return func(c *trackerConfig) {
		if alpha > 0 && alpha <= 1 {
			c.alpha = alpha
		}
	}
}

// WithCapacity sets how many pairs the tracker remembers. Values below
// one are ignored.
func WithCapacity(capacity int) Option {
	return func(c *trackerConfig) {
		if capacity >= 1 {
			c.capacity = capacity
		}
	}
}

// NewTracker creates a tracker with the default smoothing factor and
// capacity unless overridden.
func NewTracker(opts ...Option) *Tracker {
	cfg := trackerConfig{alpha: DefaultAlpha, capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := lru.New[string, float64](cfg.capacity)
	if err != nil {
		// capacity is validated positive above, lru.New cannot fail
		panic(err)
	}

	return &Tracker{alpha: cfg.alpha, estimates: cache}
}

// Predict returns the current hit-probability estimate for the pair,
// always in [0, 1]. A pair never observed predicts 0.
func (t *Tracker) Predict(fingerprint, workspaceID string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	est, ok := t.estimates.Get(key(fingerprint, workspaceID))
	if !ok {
		return 0
	}
	return est
}

// Record folds an observed outcome into the pair's estimate. A pair
// never observed starts from the same zero prior Predict reports, so
// the first hit moves the estimate to alpha rather than jumping to 1.
func (t *Tracker) Record(fingerprint, workspaceID string, wasCached bool) {
	obs := 0.0
	if wasCached {
		obs = 1.0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	k := key(fingerprint, workspaceID)
	est, _ := t.estimates.Get(k)
	t.estimates.Add(k, est+t.alpha*(obs-est))
}

// Len returns how many pairs the tracker currently remembers.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.estimates.Len()
}

func key(fingerprint, workspaceID string) string {
	return workspaceID + ":" + fingerprint
}
