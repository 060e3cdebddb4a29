// Package hitrate estimates the probability that a prompt will hit a
// provider's prompt cache.
//
// Repeated prompts are correlated by fingerprint: a hash of the prompt's
// leading content, since provider caches match on prefixes. Each
// (fingerprint, workspace) pair carries an exponentially weighted moving
// average of observed hit/miss outcomes:
//
//	tracker := hitrate.NewTracker()
//	fp := hitrate.Fingerprint(prompt)
//
//	prob := tracker.Predict(fp, workspaceID) // 0 for unseen pairs
//	tracker.Record(fp, workspaceID, wasCached)
//
// The tracker is the engine's only mutable shared state. It is safe for
// concurrent use, and memory is bounded by an LRU over pairs, so
// long-running processes do not accumulate dead fingerprints. Estimates
// are approximate by design; eviction resets a pair to the zero prior.
package hitrate
