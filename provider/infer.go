package provider

import "strings"

// prefixRule maps a model-name prefix to the provider that serves it.
type prefixRule struct {
	prefix     string
	providerID string
}

// modelPrefixes is the ordered model-name heuristic table. Earlier rules
// win, so more specific prefixes come first. This is best-effort: an
// authoritative mapping from the registry always takes precedence when
// one exists.
var modelPrefixes = []prefixRule{
	{"claude", "anthropic"},
	{"gpt", "openai"},
	{"o1", "openai"},
	{"o3", "openai"},
	{"gemini", "google"},
	{"deepseek", "deepseek"},
	{"qwen", "alibaba"},
	{"chatglm", "zhipu"},
	{"glm", "zhipu"},
	{"ernie", "baidu"},
	{"kimi", "moonshot"},
	{"moonshot", "moonshot"},
	{"doubao", "bytedance"},
	{"hunyuan", "tencent"},
	{"mixtral", "mistral"},
	{"ministral", "mistral"},
	{"mistral", "mistral"},
	{"llama", "meta"},
	{"command", "cohere"},
	{"grok", "xai"},
	{"nova", "amazon"},
	{"yi-", "01-ai"},
}

// InferProviderID guesses the provider ID from a model identifier by
// prefix. Matching is case-insensitive. Returns false when no prefix
// matches.
func InferProviderID(model string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(model))
	for _, rule := range modelPrefixes {
		if strings.HasPrefix(lower, rule.prefix) {
			return rule.providerID, true
		}
	}
	return "", false
}
