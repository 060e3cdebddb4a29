package tokens

// DefaultOutputRatio is the assumed output-to-input token ratio when a
// request does not declare an expected output size. Completions for
// routing-sized prompts typically run around a third of the input.
const DefaultOutputRatio = 1.0 / 3.0

// Usage holds the projected token counts for a request.
type Usage struct {
	// Input is the projected prompt-side token count, including any
	// ambient context the caller declared.
	Input int

	// Output is the projected completion-side token count.
	Output int
}

// Total returns the combined input and output token count.
func (u Usage) Total() int {
	return u.Input + u.Output
}

// EstimateUsage projects token usage for a prompt. The input side is the
// counted prompt plus contextTokens (attached files, conversation
// history, or retrieval results the caller already measured). The output
// side is input scaled by outputRatio; a ratio <= 0 falls back to
// DefaultOutputRatio.
func EstimateUsage(counter Counter, prompt string, contextTokens int, outputRatio float64) Usage {
	if counter == nil {
		counter = NewEstimatingCounter()
	}
	if outputRatio <= 0 {
		outputRatio = DefaultOutputRatio
	}
	if contextTokens < 0 {
		contextTokens = 0
	}

	input := counter.Count(prompt) + contextTokens
	output := int(float64(input)*outputRatio + 0.5)

	return Usage{Input: input, Output: output}
}
