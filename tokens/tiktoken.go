package tokens

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// defaultEncoding is used when no model-specific encoding is found.
// cl100k_base covers GPT-4, GPT-3.5-turbo, and most recent models.
const defaultEncoding = "cl100k_base"

// TiktokenCounter counts tokens with a real BPE tokenizer. Slower than
// the estimating counters and requires the encoding data to be
// available, so it is opt-in rather than the default.
type TiktokenCounter struct {
	encoding string
	enc      *tiktoken.Tiktoken
}

var _ Counter = (*TiktokenCounter)(nil)

// NewTiktokenCounter creates a counter for the given model or encoding
// name. The argument is tried as an encoding name first, then as a model
// name, and finally falls back to defaultEncoding. An empty argument
// selects the default encoding directly.
func NewTiktokenCounter(modelOrEncoding string) (*TiktokenCounter, error) {
	if modelOrEncoding == "" {
		modelOrEncoding = defaultEncoding
	}

	name := modelOrEncoding
	enc, err := tiktoken.GetEncoding(modelOrEncoding)
	if err != nil {
		enc, err = tiktoken.EncodingForModel(modelOrEncoding)
		if err != nil {
			name = defaultEncoding
			enc, err = tiktoken.GetEncoding(defaultEncoding)
			if err != nil {
				return nil, fmt.Errorf("load default encoding %q: %w", defaultEncoding, err)
			}
		}
	}

	return &TiktokenCounter{encoding: name, enc: enc}, nil
}

// Count returns the exact token count under the configured encoding.
func (c *TiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *TiktokenCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// Encoding returns the name that resolved the tokenizer: an encoding
// name, a model name, or defaultEncoding when the fallback was taken.
func (c *TiktokenCounter) Encoding() string {
	return c.encoding
}
