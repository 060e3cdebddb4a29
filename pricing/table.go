package pricing

// DefaultTable holds published list rates for the models in the built-in
// catalog, in USD per million tokens. Rates drift; treat this table as a
// fallback for development and tests, and feed production deployments
// from a live Source. Each provider also carries a "*" default so an
// unlisted model still prices rather than erroring.
var DefaultTable = map[string]Pricing{
	"openai/gpt-4o":      {InputPerMillion: 2.50, OutputPerMillion: 10.00, CachedInputPerMillion: 1.25},
	"openai/gpt-4o-mini": {InputPerMillion: 0.15, OutputPerMillion: 0.60, CachedInputPerMillion: 0.075},
	"openai/o1":          {InputPerMillion: 15.00, OutputPerMillion: 60.00, CachedInputPerMillion: 7.50},
	"openai/*":           {InputPerMillion: 2.50, OutputPerMillion: 10.00, CachedInputPerMillion: 1.25},

	"anthropic/claude-sonnet-4":  {InputPerMillion: 3.00, OutputPerMillion: 15.00, CachedInputPerMillion: 0.30},
	"anthropic/claude-3-5-haiku": {InputPerMillion: 0.80, OutputPerMillion: 4.00, CachedInputPerMillion: 0.08},
	"anthropic/*":                {InputPerMillion: 3.00, OutputPerMillion: 15.00, CachedInputPerMillion: 0.30},

	"google/gemini-2.0-flash": {InputPerMillion: 0.10, OutputPerMillion: 0.40, CachedInputPerMillion: 0.025},
	"google/gemini-1.5-pro":   {InputPerMillion: 1.25, OutputPerMillion: 5.00, CachedInputPerMillion: 0.3125},
	"google/*":                {InputPerMillion: 0.10, OutputPerMillion: 0.40, CachedInputPerMillion: 0.025},

	"deepseek/deepseek-chat":     {InputPerMillion: 0.27, OutputPerMillion: 1.10, CachedInputPerMillion: 0.07},
	"deepseek/deepseek-reasoner": {InputPerMillion: 0.55, OutputPerMillion: 2.19, CachedInputPerMillion: 0.14},
	"deepseek/*":                 {InputPerMillion: 0.27, OutputPerMillion: 1.10, CachedInputPerMillion: 0.07},

	"alibaba/qwen-max":   {InputPerMillion: 1.60, OutputPerMillion: 6.40, CachedInputPerMillion: 0.64},
	"alibaba/qwen-turbo": {InputPerMillion: 0.05, OutputPerMillion: 0.20, CachedInputPerMillion: 0.02},
	"alibaba/*":          {InputPerMillion: 0.05, OutputPerMillion: 0.20, CachedInputPerMillion: 0.02},

	"zhipu/glm-4-plus":  {InputPerMillion: 0.60, OutputPerMillion: 2.20, CachedInputPerMillion: 0.11},
	"zhipu/glm-4-flash": {InputPerMillion: 0.05, OutputPerMillion: 0.15},
	"zhipu/*":           {InputPerMillion: 0.60, OutputPerMillion: 2.20, CachedInputPerMillion: 0.11},

	"mistral/mistral-large": {InputPerMillion: 2.00, OutputPerMillion: 6.00},
	"mistral/ministral-8b":  {InputPerMillion: 0.10, OutputPerMillion: 0.10},
	"mistral/*":             {InputPerMillion: 2.00, OutputPerMillion: 6.00},
}

// DefaultSource returns a static source over DefaultTable.
func DefaultSource() *StaticSource {
	return NewStaticSource(DefaultTable)
}
