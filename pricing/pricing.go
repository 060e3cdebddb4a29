package pricing

// Pricing holds a model's token rates in USD per million tokens.
// A zero CachedInputPerMillion means the provider offers no cached
// pricing and cached input bills at the full input rate.
type Pricing struct {
	// InputPerMillion is the USD rate per million input tokens.
	InputPerMillion float64 `json:"input_per_million" yaml:"input_per_million" toml:"input_per_million"`

	// OutputPerMillion is the USD rate per million output tokens.
	OutputPerMillion float64 `json:"output_per_million" yaml:"output_per_million" toml:"output_per_million"`

	// CachedInputPerMillion is the USD rate per million input tokens
	// served from the provider's prompt cache.
	CachedInputPerMillion float64 `json:"cached_input_per_million,omitempty" yaml:"cached_input_per_million,omitempty" toml:"cached_input_per_million,omitempty"`
}

// IsZero reports whether no rates are set.
func (p Pricing) IsZero() bool {
	return p.InputPerMillion == 0 && p.OutputPerMillion == 0 && p.CachedInputPerMillion == 0
}

// Cents returns the full (non-cached) cost in cents for the given token
// counts. Negative counts are treated as zero.
func (p Pricing) Cents(inputTokens, outputTokens int) float64 {
	if inputTokens < 0 {
		inputTokens = 0
	}
	if outputTokens < 0 {
		outputTokens = 0
	}
	usd := (float64(inputTokens)*p.InputPerMillion + float64(outputTokens)*p.OutputPerMillion) / 1_000_000
	return usd * 100
}

// cachedCents returns the cost in cents when the input side is served
// from the provider's cache. A missing or nonsensical cached rate
// (zero, negative, or above the full rate) falls back to the full rate,
// so caching never makes a request more expensive.
func (p Pricing) cachedCents(inputTokens, outputTokens int) float64 {
	rate := p.CachedInputPerMillion
	if rate <= 0 || rate > p.InputPerMillion {
		rate = p.InputPerMillion
	}
	if inputTokens < 0 {
		inputTokens = 0
	}
	if outputTokens < 0 {
		outputTokens = 0
	}
	usd := (float64(inputTokens)*rate + float64(outputTokens)*p.OutputPerMillion) / 1_000_000
	return usd * 100
}

// EffectiveCents returns the expected cost in cents given a cache-hit
// probability: the full cost weighted by a miss and the cached cost
// weighted by a hit. Probability is clamped to [0, 1], so the result is
// never below the cached cost nor above the full cost.
func (p Pricing) EffectiveCents(inputTokens, outputTokens int, hitProbability float64) float64 {
	if hitProbability < 0 {
		hitProbability = 0
	}
	if hitProbability > 1 {
		hitProbability = 1
	}
	full := p.Cents(inputTokens, outputTokens)
	cached := p.cachedCents(inputTokens, outputTokens)
	return (1-hitProbability)*full + hitProbability*cached
}

// Discount returns the cache discount fraction 1 - effective/full,
// bounded to [0, 1]. A zero or negative full cost yields zero rather
// than a division fault.
func Discount(effectiveCents, fullCents float64) float64 {
	if fullCents <= 0 {
		return 0
	}
	d := 1 - effectiveCents/fullCents
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}
