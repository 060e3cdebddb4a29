package classify

import (
	"strings"
	"testing"

	"github.com/randalmurphal/routekit/task"
	"github.com/randalmurphal/routekit/tier"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		hint task.Category
		want tier.Tier
	}{
		{
			name: "trivial greeting",
			text: "hi",
			want: tier.Micro,
		},
		{
			name: "empty text",
			text: "",
			want: tier.Micro,
		},
		{
			name: "short question",
			text: "what time is it",
			want: tier.Micro,
		},
		{
			name: "debugging a distributed system",
			text: "debug a distributed system issue",
			want: tier.Complex,
		},
		{
			name: "architecture question",
			text: "review the architecture of this service",
			want: tier.Complex,
		},
		{
			name: "code cue",
			text: "please implement a parser for this small grammar today",
			want: tier.Versatile,
		},
		{
			name: "long context marker",
			text: "here is the full text of the contract, list the parties involved",
			want: tier.Heavy,
		},
		{
			name: "very long prompt",
			text: strings.Repeat("word ", 200),
			want: tier.Heavy,
		},
		{
			name: "ordinary mid-length prompt",
			text: "tell me about the history of the railway network in this region please",
			want: tier.Standard,
		},
		{
			name: "reasoning hint raises trivial prompt",
			text: "hi",
			hint: task.Reasoning,
			want: tier.Versatile,
		},
		{
			name: "hint never lowers",
			text: "debug a distributed system issue",
			hint: task.Translation,
			want: tier.Complex,
		},
		{
			name: "long-context hint",
			text: "ok",
			hint: task.LongContext,
			want: tier.Heavy,
		},
		{
			name: "unknown hint ignored",
			text: "hi",
			hint: task.Category("miscellaneous"),
			want: tier.Micro,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text, tt.hint); got != tt.want {
				t.Errorf("Classify(%q, %q) = %s, want %s", tt.text, tt.hint, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	prompts := []string{
		"hi",
		"debug a distributed system issue",
		"please implement a parser",
		strings.Repeat("lorem ipsum ", 100),
	}
	for _, p := range prompts {
		first := Classify(p, "")
		for i := 0; i < 20; i++ {
			if got := Classify(p, ""); got != first {
				t.Fatalf("Classify(%q) not deterministic: %s vs %s", p, got, first)
			}
		}
	}
}

func TestClassifyAlwaysValid(t *testing.T) {
	for _, p := range []string{"", "x", strings.Repeat("y ", 500), "debug"} {
		if got := Classify(p, ""); !got.Valid() {
			t.Errorf("Classify(%q) = %d, not a valid tier", p, got)
		}
	}
}
