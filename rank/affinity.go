package rank

import "github.com/randalmurphal/routekit/task"

// TaskPreferredProviders maps each task category to the providers best
// suited for it, strongest first. The table feeds the specialization
// score component; it is a curated heuristic over the built-in catalog's
// provider IDs, kept as an explicit table so deployments can replace it
// through WithTaskAffinity rather than patching conditionals.
var TaskPreferredProviders = map[task.Category][]string{
	task.CodeGeneration:   {"deepseek", "anthropic", "openai"},
	task.Reasoning:        {"openai", "anthropic", "deepseek"},
	task.LongContext:      {"google", "anthropic"},
	task.DocumentAnalysis: {"anthropic", "google"},
	task.Embeddings:       {"openai", "google"},
	task.Translation:      {"google", "openai", "alibaba"},
	task.FunctionCalling:  {"openai", "anthropic"},
	task.ChineseLanguage:  {"deepseek", "alibaba", "zhipu"},
	task.Multilingual:     {"google", "alibaba", "openai"},
}
