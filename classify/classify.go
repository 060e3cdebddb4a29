// Package classify maps prompt text to a capability tier.
//
// Classification is a pure function over the prompt: the same input always
// yields the same tier. Heuristics combine word counts with cue scans
// (reasoning and debugging phrasing, code markers, long-context markers).
// An optional task hint can raise the result to a per-category minimum but
// never lowers it.
package classify

import (
	"strings"

	"github.com/randalmurphal/routekit/task"
	"github.com/randalmurphal/routekit/tier"
)

const (
	// trivialWordLimit is the word count under which a prompt with no
	// cues is considered trivial.
	trivialWordLimit = 8

	// longPromptWords is the word count above which a prompt needs a
	// large-context tier regardless of content.
	longPromptWords = 150
)

// Cue families, scanned against the lowercased prompt. Complex cues are
// checked first and dominate; order within a family does not matter.
var (
	complexCues = []string{
		"debug", "distributed", "architecture", "race condition",
		"deadlock", "concurrency", "root cause", "prove",
		"step by step", "step-by-step", "design a system",
	}

	longContextCues = []string{
		"the following document", "full text", "entire file",
		"attached", "transcript",
	}

	versatileCues = []string{
		"```", "function", "implement", "refactor",
		"write code", "script", "multi-step",
	}
)

// hintMinimums raises the classified tier when the caller supplies a task
// hint. Values are minimums, not overrides: a prompt already classified
// higher keeps its tier.
var hintMinimums = map[task.Category]tier.Tier{
	task.CodeGeneration:   tier.Versatile,
	task.Reasoning:        tier.Versatile,
	task.DocumentAnalysis: tier.Versatile,
	task.LongContext:      tier.Heavy,
	task.Translation:      tier.Standard,
	task.FunctionCalling:  tier.Standard,
	task.ChineseLanguage:  tier.Standard,
	task.Multilingual:     tier.Standard,
}

// Classify returns the capability tier for the prompt. hint may be empty;
// a recognized hint raises the result to that category's minimum tier.
//
// Defaults: empty or trivial prompts classify as Micro, unclassifiable
// prompts of ordinary length as Standard.
func Classify(text string, hint task.Category) tier.Tier {
	t := classifyText(text)
	if min, ok := hintMinimums[hint]; ok && min > t {
		t = min
	}
	return t
}

// classifyText applies the text heuristics without the hint.
func classifyText(text string) tier.Tier {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return tier.Micro
	}

	lower := strings.ToLower(trimmed)
	words := len(strings.Fields(trimmed))

	if containsAny(lower, complexCues) {
		return tier.Complex
	}
	if words > longPromptWords || containsAny(lower, longContextCues) {
		return tier.Heavy
	}
	if containsAny(lower, versatileCues) {
		return tier.Versatile
	}
	if words < trivialWordLimit {
		return tier.Micro
	}
	return tier.Standard
}

func containsAny(lower string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
