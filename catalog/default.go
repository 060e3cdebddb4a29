package catalog

import (
	"github.com/randalmurphal/routekit/provider"
	"github.com/randalmurphal/routekit/task"
	"github.com/randalmurphal/routekit/tier"
)

// Default returns the built-in catalog: the major hosted providers with
// their flagship models, tiered and scored from published benchmarks and
// list prices. Reliability and quality scores are curated estimates;
// deployments with their own measurements should load a catalog file
// instead.
func Default() *Catalog {
	return &Catalog{Providers: []provider.Record{
		{
			ID:       "openai",
			Name:     "OpenAI",
			CostTier: 1,
			Capabilities: []task.Category{
				task.CodeGeneration, task.Reasoning, task.Embeddings,
				task.FunctionCalling, task.Chat,
			},
			Reliability: 0.99,
			Models: []provider.Model{
				{ID: "gpt-4o", Tier: tier.Versatile, ContextWindow: 128000, Quality: 84},
				{ID: "gpt-4o-mini", Tier: tier.Micro, ContextWindow: 128000, Quality: 58},
				{ID: "o1", Tier: tier.Complex, ContextWindow: 200000, Quality: 93},
			},
		},
		{
			ID:       "anthropic",
			Name:     "Anthropic",
			CostTier: 1,
			Capabilities: []task.Category{
				task.CodeGeneration, task.Reasoning, task.LongContext,
				task.DocumentAnalysis, task.FunctionCalling, task.Chat,
			},
			Specialization: task.Reasoning,
			Reliability:    0.99,
			Models: []provider.Model{
				{ID: "claude-sonnet-4", Tier: tier.Versatile, ContextWindow: 200000, Quality: 86},
				{ID: "claude-3-5-haiku", Tier: tier.Micro, ContextWindow: 200000, Quality: 60},
			},
		},
		{
			ID:                 "google",
			Name:               "Google",
			CostTier:           2,
			CostSavingsPercent: 60,
			Capabilities: []task.Category{
				task.LongContext, task.DocumentAnalysis, task.Multilingual,
				task.Embeddings, task.FunctionCalling, task.Chat,
			},
			Specialization: task.LongContext,
			Reliability:    0.97,
			Models: []provider.Model{
				{ID: "gemini-1.5-pro", Tier: tier.Versatile, ContextWindow: 2000000, Quality: 80},
				{ID: "gemini-2.0-flash", Tier: tier.Standard, ContextWindow: 1000000, Quality: 58},
			},
		},
		{
			ID:                 "deepseek",
			Name:               "DeepSeek",
			CostTier:           4,
			CostSavingsPercent: 95,
			Capabilities: []task.Category{
				task.CodeGeneration, task.Reasoning, task.FunctionCalling, task.Chat,
			},
			Specialization: task.CodeGeneration,
			Reliability:    0.95,
			Models: []provider.Model{
				{ID: "deepseek-chat", Tier: tier.Standard, ContextWindow: 64000, Quality: 62},
				{ID: "deepseek-reasoner", Tier: tier.Heavy, ContextWindow: 64000, Quality: 78},
			},
		},
		{
			ID:                 "alibaba",
			Name:               "Alibaba Cloud",
			CostTier:           3,
			CostSavingsPercent: 85,
			Capabilities: []task.Category{
				task.ChineseLanguage, task.Multilingual, task.CodeGeneration,
				task.FunctionCalling, task.Chat,
			},
			Specialization: task.ChineseLanguage,
			Reliability:    0.92,
			Models: []provider.Model{
				{ID: "qwen-max", Tier: tier.Heavy, ContextWindow: 32000, Quality: 70},
				{ID: "qwen-turbo", Tier: tier.Micro, ContextWindow: 8000, Quality: 45},
			},
		},
		{
			ID:                 "zhipu",
			Name:               "Zhipu AI",
			CostTier:           4,
			CostSavingsPercent: 90,
			Capabilities: []task.Category{
				task.ChineseLanguage, task.Multilingual, task.Chat,
			},
			Specialization: task.ChineseLanguage,
			Reliability:    0.9,
			Models: []provider.Model{
				{ID: "glm-4-plus", Tier: tier.Versatile, ContextWindow: 128000, Quality: 68},
				{ID: "glm-4-flash", Tier: tier.Micro, ContextWindow: 128000, Quality: 48},
			},
		},
		{
			ID:                 "mistral",
			Name:               "Mistral",
			CostTier:           2,
			CostSavingsPercent: 50,
			Capabilities: []task.Category{
				task.CodeGeneration, task.Multilingual, task.FunctionCalling, task.Chat,
			},
			Reliability: 0.96,
			Models: []provider.Model{
				{ID: "mistral-large", Tier: tier.Versatile, ContextWindow: 128000, Quality: 72},
				{ID: "ministral-8b", Tier: tier.Micro, ContextWindow: 128000, Quality: 50},
			},
		},
	}}
}
