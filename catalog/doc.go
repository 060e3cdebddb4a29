// Package catalog defines the provider, pricing, and policy
// configuration a deployment routes against.
//
// A catalog names the providers, their models with tiers and quality
// scores, optional pricing overrides, and optional routing policy. The
// built-in Default covers the major hosted providers; deployments with
// their own contracts or measurements load a TOML, YAML, or JSON file
// instead:
//
//	cat, err := catalog.Load("providers.toml")
//	if err != nil {
//		return err
//	}
//	registry, err := cat.Registry()
//	if err != nil {
//		return err
//	}
//	engine, err := route.NewEngine(registry,
//		route.WithPricingSource(pricing.NewCachingSource(cat.PricingSource())),
//	)
//
// # Hot Reload
//
// Watch re-validates the file on every change and delivers each valid
// revision to a callback; a revision that fails validation is logged and
// skipped, so the running catalog is never replaced by a broken one.
// Paired with the engine's registry swap, edits take effect without a
// restart:
//
//	w, err := catalog.Watch("providers.toml", func(cat *catalog.Catalog) {
//		if registry, err := cat.Registry(); err == nil {
//			engine.SwapRegistry(registry)
//		}
//	})
//	defer w.Close()
//
// # Policy
//
// A catalog may tune routing alongside its providers: scoring weights,
// per-tier model quality floors, and per-tier escalation thresholds.
// The accessors are nil-safe, so wiring reads the same whether or not
// the file carries a policy section:
//
//	opts := []route.EngineOption{
//		route.WithPricingSource(cat.PricingSource()),
//	}
//	if w, ok := cat.Policy.RankWeights(); ok {
//		opts = append(opts, route.WithRankWeights(w))
//	}
//	if floors := cat.Policy.FloorsByTier(); floors != nil {
//		opts = append(opts, route.WithQualityFloors(floors))
//	}
//	if th := cat.Policy.ThresholdsByTier(); th != nil {
//		opts = append(opts, route.WithEscalationEvaluator(
//			escalate.NewEvaluator(escalate.WithQualityThresholds(th))))
//	}
//
// # File Format
//
// The decoder follows the file extension. In TOML:
//
//	[[providers]]
//	id = "deepseek"
//	name = "DeepSeek"
//	cost_tier = 4
//	cost_savings_percent = 95
//	capabilities = ["code-generation", "reasoning", "chat"]
//	specialization = "code-generation"
//	reliability = 0.95
//
//	[[providers.models]]
//	id = "deepseek-chat"
//	tier = "standard"
//	context_window = 64000
//	quality = 62
//
//	[pricing."deepseek/deepseek-chat"]
//	input_per_million = 0.27
//	output_per_million = 1.10
//	cached_input_per_million = 0.07
//
//	[policy.weights]
//	cost = 0.4
//	reliability = 0.1
//	task_match = 0.3
//	specialization = 0.2
//
//	[policy.quality_floors]
//	micro = 25
//	complex = 80
//
// Schema exports a JSON Schema for the format so editors can validate
// catalog files as they are written.
package catalog
