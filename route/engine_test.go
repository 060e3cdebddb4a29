package route

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/routekit/budget"
	"github.com/randalmurphal/routekit/escalate"
	"github.com/randalmurphal/routekit/pricing"
	"github.com/randalmurphal/routekit/provider"
	"github.com/randalmurphal/routekit/task"
	"github.com/randalmurphal/routekit/tier"
	"github.com/randalmurphal/routekit/workspace"
)

// testRecords mirrors a slice of the built-in catalog so the default
// pricing table covers every model the tests route to.
func testRecords() []provider.Record {
	return []provider.Record{
		{
			ID: "openai", Name: "OpenAI", CostTier: 1,
			Capabilities: []task.Category{
				task.CodeGeneration, task.Reasoning, task.Embeddings,
				task.FunctionCalling, task.Chat,
			},
			Reliability: 0.99,
			Models: []provider.Model{
				{ID: "gpt-4o", Tier: tier.Versatile, ContextWindow: 128000, Quality: 84},
				{ID: "gpt-4o-mini", Tier: tier.Micro, ContextWindow: 128000, Quality: 58},
			},
		},
		{
			ID: "anthropic", Name: "Anthropic", CostTier: 1,
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
			ID: "google", Name: "Google", CostTier: 2, CostSavingsPercent: 60,
			Capabilities: []task.Category{
				task.LongContext, task.DocumentAnalysis, task.Multilingual,
				task.FunctionCalling, task.Chat,
			},
			Specialization: task.LongContext,
			Reliability:    0.97,
			Models: []provider.Model{
				{ID: "gemini-1.5-pro", Tier: tier.Versatile, ContextWindow: 1000000, Quality: 80},
				{ID: "gemini-2.0-flash", Tier: tier.Micro, ContextWindow: 1000000, Quality: 55},
			},
		},
		{
			ID: "deepseek", Name: "DeepSeek", CostTier: 4, CostSavingsPercent: 95,
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
			ID: "alibaba", Name: "Alibaba", CostTier: 3, CostSavingsPercent: 85,
			Capabilities: []task.Category{
				task.ChineseLanguage, task.Multilingual, task.CodeGeneration, task.Chat,
			},
			Specialization: task.ChineseLanguage,
			Reliability:    0.9,
			Models: []provider.Model{
				{ID: "qwen-max", Tier: tier.Heavy, ContextWindow: 32000, Quality: 70},
				{ID: "qwen-turbo", Tier: tier.Micro, ContextWindow: 8000, Quality: 45},
			},
		},
	}
}

var allTestProviders = []string{"openai", "anthropic", "google", "deepseek", "alibaba"}

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	engine, err := NewEngine(provider.MustNewRegistry(testRecords()...), opts...)
	require.NoError(t, err)
	return engine
}

func tierPtr(t tier.Tier) *tier.Tier { return &t }
func intPtr(v int) *int              { return &v }

// spendFunc adapts a function to the SpendSource interface.
type spendFunc func(ctx context.Context, workspaceID string) (float64, error)

func (f spendFunc) MonthToDateCents(ctx context.Context, workspaceID string) (float64, error) {
	return f(ctx, workspaceID)
}

// errorSource is a pricing source with no data.
type errorSource struct{}

func (errorSource) Current(context.Context, string, string) (pricing.Pricing, error) {
	return pricing.Pricing{}, pricing.ErrUnknownModel
}

// captureSink records audit calls for assertions.
type captureSink struct {
	mu          sync.Mutex
	decisions   []*Decision
	escalations []escalate.Decision
}

func (s *captureSink) RoutingDecided(_ context.Context, d *Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decisions = append(s.decisions, d)
}

func (s *captureSink) EscalationDecided(_ context.Context, _ string, d escalate.Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.escalations = append(s.escalations, d)
}

func TestNewEngine_RequiresRegistry(t *testing.T) {
	_, err := NewEngine(nil)
	require.Error(t, err)
}

func TestEngine_Resolve_CodePromptPrefersSpecialist(t *testing.T) {
	engine := newTestEngine(t)

	d, err := engine.Resolve(context.Background(), Request{
		Prompt:              "Write a function to reverse a linked list in Go",
		ConfiguredProviders: allTestProviders,
	})
	require.NoError(t, err)

	// "function" classifies versatile; the code specialist wins on the
	// combined cost and specialization advantage.
	assert.Equal(t, tier.Versatile, d.Tier)
	assert.Equal(t, TierSourceClassified, d.TierSource)
	assert.Equal(t, "tier versatile classified from the prompt", d.Reason)
	assert.Equal(t, "deepseek", d.ProviderID)
	assert.Equal(t, "deepseek-reasoner", d.ModelID)
	assert.Equal(t, []task.Category{task.CodeGeneration}, d.Categories)

	// Every configured provider is scored and reported, best first.
	require.Len(t, d.Candidates, 5)
	assert.Equal(t, "deepseek", d.Candidates[0].ProviderID)

	// openai and anthropic score identically here; registration order
	// breaks the tie.
	ids := make([]string, 0, len(d.Candidates))
	for _, c := range d.Candidates {
		ids = append(ids, c.ProviderID)
	}
	assert.Equal(t, []string{"deepseek", "alibaba", "openai", "anthropic", "google"}, ids)

	// No cache history yet, so no discount.
	assert.Equal(t, 0.0, d.CacheHitProbability)
	assert.Equal(t, d.FullCents, d.EffectiveCents)
	assert.Equal(t, 0.0, d.CacheDiscount)
	assert.Greater(t, d.EffectiveCents, 0.0)

	assert.NotEmpty(t, d.ID)
	assert.NotEmpty(t, d.Fingerprint)
	assert.False(t, d.CreatedAt.IsZero())
}

func TestEngine_Resolve_TierOverride(t *testing.T) {
	engine := newTestEngine(t)

	d, err := engine.Resolve(context.Background(), Request{
		Prompt:              "hi",
		TierOverride:        "heavy",
		ConfiguredProviders: allTestProviders,
	})
	require.NoError(t, err)

	assert.Equal(t, tier.Heavy, d.Tier)
	assert.Equal(t, TierSourceOverride, d.TierSource)
	assert.Equal(t, "tier heavy forced by request override", d.Reason)
	assert.Equal(t, "deepseek-reasoner", d.ModelID)
}

func TestEngine_Resolve_InvalidOverride(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Resolve(context.Background(), Request{
		Prompt:              "hi",
		TierOverride:        "mega",
		ConfiguredProviders: allTestProviders,
	})

	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, RejectInvalidOverride, rej.Code)
	assert.Contains(t, rej.Message, "mega")
}

func TestEngine_Resolve_WorkspaceDefaultTier(t *testing.T) {
	store := workspace.NewMemoryStore()
	store.Set("ws-1", workspace.Preference{DefaultTier: tierPtr(tier.Heavy)})
	engine := newTestEngine(t, WithPreferenceStore(store))

	d, err := engine.Resolve(context.Background(), Request{
		WorkspaceID:         "ws-1",
		Prompt:              "hi",
		ConfiguredProviders: allTestProviders,
	})
	require.NoError(t, err)

	assert.Equal(t, tier.Heavy, d.Tier)
	assert.Equal(t, TierSourceWorkspaceDefault, d.TierSource)
	assert.Equal(t, "tier heavy set by workspace default", d.Reason)
}

func TestEngine_Resolve_ClampsClassifiedTier(t *testing.T) {
	store := workspace.NewMemoryStore()
	store.Set("ws-1", workspace.Preference{MaxTier: tierPtr(tier.Standard)})
	engine := newTestEngine(t, WithPreferenceStore(store))

	// "debug" and "race condition" classify complex; the preference caps
	// the workspace at standard.
	d, err := engine.Resolve(context.Background(), Request{
		WorkspaceID:         "ws-1",
		Prompt:              "Debug this race condition in my distributed system",
		ConfiguredProviders: allTestProviders,
	})
	require.NoError(t, err)

	assert.Equal(t, tier.Standard, d.Tier)
	assert.Equal(t, TierSourceClamped, d.TierSource)
	assert.Equal(t, "classified as complex, clamped to standard by workspace tier bounds", d.Reason)
	assert.Equal(t, "deepseek-chat", d.ModelID)
}

func TestEngine_Resolve_OverrideBypassesClamp(t *testing.T) {
	store := workspace.NewMemoryStore()
	store.Set("ws-1", workspace.Preference{MaxTier: tierPtr(tier.Micro)})
	engine := newTestEngine(t, WithPreferenceStore(store))

	d, err := engine.Resolve(context.Background(), Request{
		WorkspaceID:         "ws-1",
		Prompt:              "hi",
		TierOverride:        "complex",
		ConfiguredProviders: allTestProviders,
	})
	require.NoError(t, err)

	assert.Equal(t, tier.Complex, d.Tier)
	assert.Equal(t, TierSourceOverride, d.TierSource)
}

func TestEngine_Resolve_TaskHint(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("valid hint raises tier and leads categories", func(t *testing.T) {
		d, err := engine.Resolve(context.Background(), Request{
			Prompt:              "fix it",
			TaskHint:            task.CodeGeneration,
			ConfiguredProviders: allTestProviders,
		})
		require.NoError(t, err)

		assert.Equal(t, tier.Versatile, d.Tier)
		assert.Equal(t, []task.Category{task.CodeGeneration}, d.Categories)
	})

	t.Run("unknown hint is ignored", func(t *testing.T) {
		d, err := engine.Resolve(context.Background(), Request{
			Prompt:              "fix it",
			TaskHint:            task.Category("quantum"),
			ConfiguredProviders: allTestProviders,
		})
		require.NoError(t, err)

		assert.Equal(t, tier.Micro, d.Tier)
		assert.Equal(t, []task.Category{task.General}, d.Categories)
	})
}

func TestEngine_Resolve_LongContextRouting(t *testing.T) {
	engine := newTestEngine(t)

	d, err := engine.Resolve(context.Background(), Request{
		Prompt:              "Summarize the quarterly report",
		ContextTokens:       20000,
		ConfiguredProviders: allTestProviders,
	})
	require.NoError(t, err)

	// Context size alone tags long-context, and the long-context
	// specialist takes it.
	assert.Equal(t, task.LongContext, d.Categories[0])
	assert.Contains(t, d.Categories, task.DocumentAnalysis)
	assert.Equal(t, "google", d.ProviderID)
	assert.GreaterOrEqual(t, d.Usage.Input, 20000)
}

func TestEngine_Resolve_PreferredProviders(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("narrows candidates", func(t *testing.T) {
		d, err := engine.Resolve(context.Background(), Request{
			Prompt:              "Write a function to reverse a linked list in Go",
			ConfiguredProviders: allTestProviders,
			PreferredProviders:  []string{"anthropic"},
		})
		require.NoError(t, err)

		assert.Equal(t, "anthropic", d.ProviderID)
		assert.Equal(t, "claude-sonnet-4", d.ModelID)
		require.Len(t, d.Candidates, 1)
	})

	t.Run("ineffective preference falls back to full pool", func(t *testing.T) {
		d, err := engine.Resolve(context.Background(), Request{
			Prompt:              "Write a function to reverse a linked list in Go",
			ConfiguredProviders: allTestProviders,
			PreferredProviders:  []string{"zhipu"},
		})
		require.NoError(t, err)

		assert.Equal(t, "deepseek", d.ProviderID)
		assert.Len(t, d.Candidates, 5)
	})

	t.Run("workspace preference applies when request has none", func(t *testing.T) {
		store := workspace.NewMemoryStore()
		store.Set("ws-1", workspace.Preference{PreferredProviders: []string{"openai"}})
		engine := newTestEngine(t, WithPreferenceStore(store))

		d, err := engine.Resolve(context.Background(), Request{
			WorkspaceID:         "ws-1",
			Prompt:              "Write a function to reverse a linked list in Go",
			ConfiguredProviders: allTestProviders,
		})
		require.NoError(t, err)

		assert.Equal(t, "openai", d.ProviderID)
	})
}

func TestEngine_Resolve_RequireTools(t *testing.T) {
	engine := newTestEngine(t)

	d, err := engine.Resolve(context.Background(), Request{
		Prompt:              "Write a function to reverse a linked list in Go",
		RequiresTools:       true,
		ConfiguredProviders: allTestProviders,
	})
	require.NoError(t, err)

	for _, c := range d.Candidates {
		assert.NotEqual(t, "alibaba", c.ProviderID)
	}

	_, err = engine.Resolve(context.Background(), Request{
		Prompt:              "hi",
		RequiresTools:       true,
		ConfiguredProviders: []string{"alibaba"},
	})

	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, RejectNoEligibleModel, rej.Code)
}

func TestEngine_Resolve_NoProvidersConfigured(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Resolve(context.Background(), Request{Prompt: "hi"})

	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, RejectNoProvidersConfigured, rej.Code)
}

func TestEngine_Resolve_QualityFloor(t *testing.T) {
	engine := newTestEngine(t, WithQualityFloors(map[tier.Tier]int{tier.Micro: 99}))

	_, err := engine.Resolve(context.Background(), Request{
		Prompt:              "hi",
		ConfiguredProviders: allTestProviders,
	})

	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, RejectNoEligibleModel, rej.Code)
}

func TestEngine_Resolve_PerRequestBudget(t *testing.T) {
	store := workspace.NewMemoryStore()
	store.Set("ws-1", workspace.Preference{MaxRequestCents: 0.0001})
	engine := newTestEngine(t, WithPreferenceStore(store))

	_, err := engine.Resolve(context.Background(), Request{
		WorkspaceID:         "ws-1",
		Prompt:              "Write a function to reverse a linked list in Go",
		ConfiguredProviders: allTestProviders,
	})

	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, RejectBudgetExceeded, rej.Code)
	assert.Equal(t, "per_request", rej.Constraint)
	assert.InDelta(t, 0.0001, rej.Limit, 1e-12)
	assert.Greater(t, rej.Current, rej.Limit)

	// The underlying violation stays reachable for callers that want it.
	var viol *budget.Violation
	require.ErrorAs(t, err, &viol)
	assert.Equal(t, budget.MetricPerRequest, viol.Metric)
}

func TestEngine_Resolve_MonthlyBudget(t *testing.T) {
	newEngineWithSpend := func(t *testing.T, spend SpendSource) *Engine {
		store := workspace.NewMemoryStore()
		store.Set("ws-1", workspace.Preference{MonthlyBudgetCents: 100})
		return newTestEngine(t, WithPreferenceStore(store), WithSpendSource(spend))
	}
	req := Request{
		WorkspaceID:         "ws-1",
		Prompt:              "Write a function to reverse a linked list in Go",
		ConfiguredProviders: allTestProviders,
	}

	t.Run("rejects when projected spend crosses budget", func(t *testing.T) {
		engine := newEngineWithSpend(t, spendFunc(func(context.Context, string) (float64, error) {
			return 99.9999, nil
		}))

		_, err := engine.Resolve(context.Background(), req)

		var rej *Rejection
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, RejectBudgetExceeded, rej.Code)
		assert.Equal(t, "monthly", rej.Constraint)
		assert.InDelta(t, 100, rej.Limit, 1e-12)
		assert.Greater(t, rej.Current, 100.0)
	})

	t.Run("allows under budget", func(t *testing.T) {
		engine := newEngineWithSpend(t, spendFunc(func(context.Context, string) (float64, error) {
			return 10, nil
		}))

		_, err := engine.Resolve(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("degrades when spend source fails", func(t *testing.T) {
		engine := newEngineWithSpend(t, spendFunc(func(context.Context, string) (float64, error) {
			return 0, errors.New("accounting down")
		}))

		_, err := engine.Resolve(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("degrades without a spend source", func(t *testing.T) {
		engine := newEngineWithSpend(t, nil)

		_, err := engine.Resolve(context.Background(), req)
		require.NoError(t, err)
	})
}

func TestEngine_Resolve_CostTieBreak(t *testing.T) {
	// Two providers engineered to score identically: same savings, same
	// reliability, no category fit either way.
	records := []provider.Record{
		{
			ID: "a", Name: "A", CostTier: 2, CostSavingsPercent: 50,
			Capabilities: []task.Category{task.Chat}, Reliability: 0.9,
			Models: []provider.Model{{ID: "m-a", Tier: tier.Standard, ContextWindow: 32000, Quality: 60}},
		},
		{
			ID: "b", Name: "B", CostTier: 2, CostSavingsPercent: 50,
			Capabilities: []task.Category{task.Chat}, Reliability: 0.9,
			Models: []provider.Model{{ID: "m-b", Tier: tier.Standard, ContextWindow: 32000, Quality: 60}},
		},
	}
	req := Request{Prompt: "hello", ConfiguredProviders: []string{"a", "b"}}

	t.Run("tie goes to the cheaper candidate", func(t *testing.T) {
		source := pricing.NewStaticSource(map[string]pricing.Pricing{
			"a/m-a": {InputPerMillion: 10, OutputPerMillion: 10},
			"b/m-b": {InputPerMillion: 1, OutputPerMillion: 1},
		})
		engine, err := NewEngine(provider.MustNewRegistry(records...), WithPricingSource(source))
		require.NoError(t, err)

		d, err := engine.Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "b", d.ProviderID)
	})

	t.Run("equal cost keeps registration order", func(t *testing.T) {
		source := pricing.NewStaticSource(map[string]pricing.Pricing{
			"a/m-a": {InputPerMillion: 1, OutputPerMillion: 1},
			"b/m-b": {InputPerMillion: 1, OutputPerMillion: 1},
		})
		engine, err := NewEngine(provider.MustNewRegistry(records...), WithPricingSource(source))
		require.NoError(t, err)

		d, err := engine.Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "a", d.ProviderID)
	})
}

func TestEngine_Resolve_PricingUnavailable(t *testing.T) {
	engine := newTestEngine(t, WithPricingSource(errorSource{}))

	d, err := engine.Resolve(context.Background(), Request{
		Prompt:              "Write a function to reverse a linked list in Go",
		ConfiguredProviders: allTestProviders,
	})
	require.NoError(t, err)

	// Routing still works; the decision just carries no cost projection.
	assert.Equal(t, "deepseek", d.ProviderID)
	assert.Equal(t, 0.0, d.EffectiveCents)
	assert.Equal(t, 0.0, d.FullCents)
	for _, c := range d.Candidates {
		assert.Equal(t, -1.0, c.EffectiveCents)
	}
}

func TestEngine_CacheDiscountAfterOutcomes(t *testing.T) {
	engine := newTestEngine(t)
	req := Request{
		WorkspaceID:         "ws-cache",
		Prompt:              "Write a function to reverse a linked list in Go",
		ConfiguredProviders: allTestProviders,
	}

	first, err := engine.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, first.CacheHitProbability)

	for i := 0; i < 3; i++ {
		engine.ReportOutcome(context.Background(), Outcome{
			WorkspaceID: "ws-cache",
			Fingerprint: first.Fingerprint,
			Tier:        first.Tier,
			WasCached:   true,
		})
	}

	second, err := engine.Resolve(context.Background(), req)
	require.NoError(t, err)

	// Three hits under the default smoothing: 0.2, 0.36, 0.488.
	assert.InDelta(t, 0.488, second.CacheHitProbability, 1e-9)
	assert.Less(t, second.EffectiveCents, second.FullCents)
	assert.Greater(t, second.CacheDiscount, 0.0)

	// History is per workspace; another workspace starts cold.
	other := req
	other.WorkspaceID = "ws-other"
	third, err := engine.Resolve(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, 0.0, third.CacheHitProbability)
}

func TestEngine_ReportOutcome_Escalation(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("low quality escalates one tier", func(t *testing.T) {
		d := engine.ReportOutcome(context.Background(), Outcome{
			Tier:    tier.Standard,
			Quality: intPtr(30),
		})

		assert.True(t, d.Escalate)
		assert.Equal(t, escalate.ReasonQualityBelowThreshold, d.Reason)
		assert.Equal(t, tier.Standard, d.From)
		assert.Equal(t, tier.Versatile, d.Target)
	})

	t.Run("upstream error escalates", func(t *testing.T) {
		d := engine.ReportOutcome(context.Background(), Outcome{
			Tier:          tier.Micro,
			UpstreamError: true,
		})

		assert.True(t, d.Escalate)
		assert.Equal(t, escalate.ReasonUpstreamError, d.Reason)
		assert.Equal(t, tier.Standard, d.Target)
	})

	t.Run("maximum tier never escalates", func(t *testing.T) {
		d := engine.ReportOutcome(context.Background(), Outcome{
			Tier:        tier.Complex,
			RateLimited: true,
		})

		assert.False(t, d.Escalate)
		assert.Equal(t, tier.Complex, d.Target)
	})

	t.Run("workspace preference disables escalation", func(t *testing.T) {
		off := false
		store := workspace.NewMemoryStore()
		store.Set("ws-1", workspace.Preference{AutoEscalation: &off})
		engine := newTestEngine(t, WithPreferenceStore(store))

		d := engine.ReportOutcome(context.Background(), Outcome{
			WorkspaceID:   "ws-1",
			Tier:          tier.Standard,
			UpstreamError: true,
		})

		assert.False(t, d.Escalate)
	})
}

func TestEngine_Stats(t *testing.T) {
	engine := newTestEngine(t)
	req := Request{
		Prompt:              "Write a function to reverse a linked list in Go",
		ConfiguredProviders: allTestProviders,
	}

	for i := 0; i < 2; i++ {
		_, err := engine.Resolve(context.Background(), req)
		require.NoError(t, err)
	}

	totals := engine.Stats().Totals()
	assert.Equal(t, 2, totals.Requests)
	assert.Greater(t, totals.EffectiveCents, 0.0)
	assert.Equal(t, 2, engine.Stats().Provider("deepseek").Requests)
}

func TestEngine_AuditSink(t *testing.T) {
	sink := &captureSink{}
	engine := newTestEngine(t, WithAuditSink(sink))

	d, err := engine.Resolve(context.Background(), Request{
		Prompt:              "hello there, how are you today",
		ConfiguredProviders: allTestProviders,
	})
	require.NoError(t, err)

	engine.ReportOutcome(context.Background(), Outcome{
		Fingerprint: d.Fingerprint,
		Tier:        d.Tier,
		WasCached:   false,
	})

	require.Len(t, sink.decisions, 1)
	assert.Equal(t, d.ID, sink.decisions[0].ID)
	require.Len(t, sink.escalations, 1)
}

func TestEngine_SwapRegistry(t *testing.T) {
	records := testRecords()
	deepseekOnly := provider.MustNewRegistry(records[3])
	anthropicOnly := provider.MustNewRegistry(records[1])

	engine, err := NewEngine(deepseekOnly)
	require.NoError(t, err)

	req := Request{
		Prompt:              "hello",
		ConfiguredProviders: []string{"deepseek", "anthropic"},
	}

	d, err := engine.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "deepseek", d.ProviderID)

	require.NoError(t, engine.SwapRegistry(anthropicOnly))
	assert.Same(t, anthropicOnly, engine.Registry())

	d, err = engine.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", d.ProviderID)

	require.Error(t, engine.SwapRegistry(nil))
}

func TestEngine_Resolve_Deterministic(t *testing.T) {
	engine := newTestEngine(t)
	req := Request{
		WorkspaceID:         "ws-1",
		Prompt:              "Write a function to reverse a linked list in Go",
		ConfiguredProviders: allTestProviders,
	}

	first, err := engine.Resolve(context.Background(), req)
	require.NoError(t, err)
	second, err := engine.Resolve(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ProviderID, second.ProviderID)
	assert.Equal(t, first.ModelID, second.ModelID)
	assert.Equal(t, first.Tier, second.Tier)
	assert.Equal(t, first.EffectiveCents, second.EffectiveCents)
	assert.Equal(t, first.Candidates, second.Candidates)
	assert.NotEqual(t, first.ID, second.ID)
}
