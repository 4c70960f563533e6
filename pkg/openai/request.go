package openai

// ChatRequest represents a chat completion request (OpenAI-compatible).
type ChatRequest struct {
	Model       string    `json:"model"`       // Model name (e.g., "gpt-4o-mini")
	Messages    []Message `json:"messages"`    // System directive + context window + current input
	MaxTokens   int       `json:"max_tokens"`  // Output token budget
	Temperature float64   `json:"temperature"` // Sampling temperature
}
