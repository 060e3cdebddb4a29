package route

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/routekit/escalate"
)

// AuditSink receives routing and escalation decisions for external
// persistence. Implementations must not block; the engine calls them
// synchronously on the request path.
type AuditSink interface {
	RoutingDecided(ctx context.Context, d *Decision)
	EscalationDecided(ctx context.Context, workspaceID string, d escalate.Decision)
}

// SlogSink writes audit records to the process logger.
type SlogSink struct{}

// RoutingDecided logs the decision's selection and cost figures.
func (SlogSink) RoutingDecided(_ context.Context, d *Decision) {
	slog.Info("routing decided",
		slog.String("decision_id", d.ID),
		slog.String("workspace", d.WorkspaceID),
		slog.String("tier", d.Tier.String()),
		slog.String("tier_source", string(d.TierSource)),
		slog.String("provider", d.ProviderID),
		slog.String("model", d.ModelID),
		slog.Float64("effective_cents", d.EffectiveCents),
		slog.Float64("cache_discount", d.CacheDiscount),
		slog.Int("candidates", len(d.Candidates)))
}

// EscalationDecided logs the escalation outcome.
func (SlogSink) EscalationDecided(_ context.Context, workspaceID string, d escalate.Decision) {
	slog.Info("escalation decided",
		slog.String("workspace", workspaceID),
		slog.Bool("escalate", d.Escalate),
		slog.String("reason", string(d.Reason)),
		slog.String("from", d.From.String()),
		slog.String("target", d.Target.String()),
		slog.String("detail", d.Detail))
}

// NopSink discards audit records.
type NopSink struct{}

// RoutingDecided discards the decision.
func (NopSink) RoutingDecided(context.Context, *Decision) {}

// EscalationDecided discards the decision.
func (NopSink) EscalationDecided(context.Context, string, escalate.Decision) {}
