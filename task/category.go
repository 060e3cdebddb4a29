// Package task defines task categories and detects which categories a
// prompt belongs to.
//
// Categories are unordered tags: a prompt may carry several at once
// ("code-generation" and "reasoning", say). Detection is keyword and
// script based, preserving detection order as relevance order, and falls
// back to the single General category when nothing matches.
package task

// Category tags the kind of work a prompt represents.
type Category string

// Task categories a prompt can be routed by.
const (
	CodeGeneration   Category = "code-generation"
	Reasoning        Category = "reasoning"
	LongContext      Category = "long-context"
	DocumentAnalysis Category = "document-analysis"
	Embeddings       Category = "embeddings"
	Translation      Category = "translation"
	FunctionCalling  Category = "function-calling"
	ChineseLanguage  Category = "chinese-language"
	Multilingual     Category = "multilingual"
	General          Category = "general"
)

// Chat is a generic provider capability, never produced by Detect.
// Providers list it alongside task categories to advertise plain
// conversational support.
const Chat Category = "chat"

// String returns the category tag.
func (c Category) String() string {
	return string(c)
}

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	switch c {
	case CodeGeneration, Reasoning, LongContext, DocumentAnalysis,
		Embeddings, Translation, FunctionCalling, ChineseLanguage,
		Multilingual, General, Chat:
		return true
	default:
		return false
	}
}

// Parse converts a string to a Category, returning General for unknown
// values.
func Parse(s string) Category {
	c := Category(s)
	if c.Valid() {
		return c
	}
	return General
}
