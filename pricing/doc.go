// Package pricing converts token estimates into monetary cost.
//
// Rates are expressed in USD per million tokens; costs come back in
// cents so budget math stays in one unit throughout the engine.
//
// # Cost Model
//
// Cents is the full price for a request. EffectiveCents discounts the
// input side by a cache-hit probability:
//
//	p := pricing.Pricing{InputPerMillion: 0.27, OutputPerMillion: 1.10, CachedInputPerMillion: 0.07}
//	full := p.Cents(10000, 3000)               // miss everything
//	eff := p.EffectiveCents(10000, 3000, 0.6)  // 60% of inputs served from cache
//	disc := pricing.Discount(eff, full)        // fraction saved, in [0,1]
//
// Effective cost is non-decreasing in token count and non-increasing in
// hit probability. Providers without cached pricing see no discount.
//
// # Sources
//
// A Source supplies current rates for a provider/model pair. StaticSource
// serves an in-memory table (see DefaultTable for the built-in catalog's
// list rates). CachingSource wraps any Source with a TTL cache, a
// per-fetch timeout, and last-known-good fallback, so a flaky upstream
// degrades pricing freshness instead of blocking routing:
//
//	src := pricing.NewCachingSource(remote,
//	    pricing.WithTTL(10*time.Minute),
//	    pricing.WithFetchTimeout(time.Second),
//	)
package pricing
