// Package route orchestrates request routing: it turns a prompt plus
// caller configuration into a provider and model selection with a full
// cost projection, and folds execution outcomes back into its estimates.
//
// # Resolving
//
// Resolve runs the whole pipeline for one request: tier resolution
// (override, then workspace default, then classification clamped to the
// workspace bounds), task category detection, token usage projection,
// provider ranking, cache-aware cost projection, and budget enforcement.
//
//	registry := provider.MustNewRegistry(records...)
//	engine, err := route.NewEngine(registry,
//		route.WithPreferenceStore(store),
//		route.WithAuditSink(route.SlogSink{}),
//	)
//	if err != nil {
//		return err
//	}
//
//	decision, err := engine.Resolve(ctx, route.Request{
//		WorkspaceID:         "ws-1",
//		Prompt:              "Write a binary search in Go",
//		ConfiguredProviders: []string{"deepseek", "anthropic"},
//	})
//
// Every refusal the caller can act on comes back as a *Rejection with a
// code, the violated constraint, and the compared values. Infrastructure
// failures (a preference store outage, a pricing fetch timeout) never
// reject a request; the engine degrades to its defaults and logs.
//
// # Outcomes
//
// After executing the request against the chosen provider, the caller
// reports how it went. The cache outcome trains the hit-rate estimate
// behind future cost projections, and the quality and failure signals
// drive the escalation decision:
//
//	verdict := engine.ReportOutcome(ctx, route.Outcome{
//		WorkspaceID: "ws-1",
//		Fingerprint: decision.Fingerprint,
//		Tier:        decision.Tier,
//		WasCached:   true,
//	})
//	if verdict.Escalate {
//		// retry at verdict.Target
//	}
//
// # Explainability
//
// A Decision records everything that produced it: the tier with its
// source and a plain-words reason, the detected categories, every scored
// candidate with its component breakdown, the cache-hit probability, and
// the effective versus full cost. An AuditSink receives each decision as
// it is made.
package route
