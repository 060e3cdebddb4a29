// Package tokens provides token counting and usage projection for LLM prompts.
//
// Token estimation is based on the rule-of-thumb that approximately 4 characters
// equals 1 token for English text. This provides a fast estimation without
// requiring a model-specific tokenizer.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// BlendedCounter averages a word-based and a character-based estimate, which
// tracks real tokenizers more closely on inputs that mix prose and code:
//
//	counter := tokens.NewBlendedCounter()
//	count := counter.Count("func main() {}")
//
// TiktokenCounter wraps a real BPE tokenizer for callers that need exact
// counts and have the encoding data available:
//
//	counter, err := tokens.NewTiktokenCounter("gpt-4")
//
// # Usage Projection
//
// EstimateUsage projects the input and output token counts for a request
// before it is sent anywhere:
//
//	usage := tokens.EstimateUsage(counter, prompt, contextTokens, tokens.DefaultOutputRatio)
//	usage.Input   // prompt tokens plus declared context
//	usage.Output  // projected completion tokens
//	usage.Total() // combined
//
// The projection feeds cost comparison across providers, so relative accuracy
// matters more than absolute accuracy.
package tokens
