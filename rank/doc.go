// Package rank scores and orders candidate providers for a request.
//
// A Ranker combines four components per provider, each in [0, 1]:
// cost (from the provider's savings relative to a premium baseline),
// reliability, task match (capabilities against the detected
// categories), and specialization (a static task affinity table plus
// the provider's own specialization tag). Components are combined with
// tunable weights that default to 0.3/0.2/0.3/0.2:
//
//	ranker := rank.NewRanker(registry)
//	candidates, err := ranker.Rank(rank.Input{
//	    Categories:          []task.Category{task.CodeGeneration},
//	    Tier:                tier.Versatile,
//	    ConfiguredProviders: []string{"deepseek", "openai"},
//	})
//
// Only configured providers are eligible. A preferred-provider list
// narrows the pool but falls back to the full pool when it would
// eliminate everyone. Ties keep registration order, so ranking is
// deterministic for a fixed registry.
//
// Each candidate carries its eligible models in preference order:
// models below the tier's quality floor are excluded, and the rest are
// ordered by tier match, context-window fit, and specialization, with
// the provider's primary ordering as the final tie-break.
package rank
