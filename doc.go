// Package routekit routes LLM requests to the cheapest provider and
// model that can handle them.
//
// routekit is a library, not a proxy: it decides where a request should
// go and what it will cost, and the caller executes the request however
// it likes. Each subpackage can be used independently:
//
//   - route: the routing engine tying everything together
//   - catalog: provider, pricing, and policy configuration with hot reload
//   - classify: prompt to capability-tier classification
//   - task: task category detection (code, reasoning, translation, ...)
//   - rank: provider scoring and model selection
//   - pricing: token rates, cost projection, and cache discounts
//   - tokens: token counting and usage projection
//   - hitrate: prompt-cache hit-rate tracking
//   - workspace: per-workspace preferences and constraints
//   - budget: spend ceiling enforcement
//   - escalate: quality-driven tier escalation
//   - tier, provider: the shared vocabulary types
//
// # Quick Start
//
//	import (
//		"github.com/randalmurphal/routekit/catalog"
//		"github.com/randalmurphal/routekit/route"
//	)
//
//	registry, err := catalog.Default().Registry()
//	if err != nil {
//		return err
//	}
//	engine, err := route.NewEngine(registry)
//	if err != nil {
//		return err
//	}
//
//	decision, err := engine.Resolve(ctx, route.Request{
//		WorkspaceID:         "ws-1",
//		Prompt:              "Write a function to merge two sorted lists",
//		ConfiguredProviders: []string{"deepseek", "anthropic", "openai"},
//	})
//	if err != nil {
//		return err
//	}
//	// decision.ProviderID, decision.ModelID, decision.EffectiveCents
//
// After executing the request, report the outcome so the engine can
// refine its cache-hit estimates and decide on escalation:
//
//	verdict := engine.ReportOutcome(ctx, route.Outcome{
//		WorkspaceID: "ws-1",
//		Fingerprint: decision.Fingerprint,
//		Tier:        decision.Tier,
//		WasCached:   true,
//	})
//
// # Design Philosophy
//
//   - Deterministic: identical inputs yield identical decisions
//   - Explainable: every decision carries its full candidate scoreboard
//   - Degradable: lost preferences or pricing never fail a request
//   - Each package usable independently
//   - Sensible defaults with full configurability
package routekit
