package task

import (
	"strings"
	"unicode"
)

// LongContextThreshold is the context size, in token-equivalents, above
// which a request is always tagged long-context.
const LongContextThreshold = 8000

// Keyword families per category. Matching is case-insensitive substring
// containment, checked in the order the families are listed in Detect.
var (
	codeKeywords = []string{
		"```", "func ", "def ", "class ", "import ",
		"write a function", "write code", "write a script",
		"implement", "refactor", "unit test", "stack trace",
		"compile", "syntax error", "regex", "sql query",
	}

	reasoningKeywords = []string{
		"why ", "analyze", "analyse", "compare", "evaluate",
		"step by step", "step-by-step", "reason", "prove",
		"trade-off", "tradeoff", "root cause", "debug",
	}

	documentKeywords = []string{
		"summarize", "summarise", "summary", "document",
		"report", "extract", "key points", "pdf",
	}

	embeddingKeywords = []string{
		"embedding", "semantic search", "similarity", "vector search",
	}

	translationKeywords = []string{
		"translate", "translation",
	}

	toolKeywords = []string{
		"function call", "tool call", "call the function",
		"use the tool", "api call",
	}
)

// Detect returns the task categories matching the prompt, in detection
// order. contextTokens is the estimated size of the surrounding context;
// above LongContextThreshold the long-context category is included
// unconditionally, ahead of everything else. When no category matches,
// the result is exactly [General].
func Detect(text string, contextTokens int) []Category {
	var cats []Category
	lower := strings.ToLower(text)

	if contextTokens > LongContextThreshold {
		cats = append(cats, LongContext)
	}
	if containsAny(lower, codeKeywords) {
		cats = append(cats, CodeGeneration)
	}
	if containsAny(lower, reasoningKeywords) {
		cats = append(cats, Reasoning)
	}
	if containsAny(lower, documentKeywords) {
		cats = append(cats, DocumentAnalysis)
	}
	if containsAny(lower, embeddingKeywords) {
		cats = append(cats, Embeddings)
	}
	if containsAny(lower, translationKeywords) {
		cats = append(cats, Translation)
	}
	if containsAny(lower, toolKeywords) {
		cats = append(cats, FunctionCalling)
	}
	if containsHan(text) {
		cats = append(cats, ChineseLanguage)
	} else if containsOtherScript(text) {
		cats = append(cats, Multilingual)
	}

	if len(cats) == 0 {
		return []Category{General}
	}
	return cats
}

// containsAny reports whether lower contains any of the keywords.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// containsHan reports whether the text contains Han ideograms.
func containsHan(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// otherScripts are non-Latin scripts that tag a prompt multilingual.
// Han is handled separately as chinese-language.
var otherScripts = []*unicode.RangeTable{
	unicode.Cyrillic,
	unicode.Arabic,
	unicode.Hangul,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Devanagari,
	unicode.Thai,
	unicode.Hebrew,
	unicode.Greek,
}

// containsOtherScript reports whether the text contains a non-Latin,
// non-Han script.
func containsOtherScript(text string) bool {
	for _, r := range text {
		for _, rt := range otherScripts {
			if unicode.Is(rt, r) {
				return true
			}
		}
	}
	return false
}
