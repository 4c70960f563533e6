package chat

import (
	"time"

	"github.com/foodhubco/foodbot/pkg/openai"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in a conversation, attributed to either the user or
// the assistant. Turns are immutable once created; their order is
// chronological and semantically significant.
type Turn struct {
	Role      string
	Text      string
	Timestamp time.Time
}

// Reply sources.
const (
	SourceOpenAI   = "openai"
	SourceFallback = "fallback"
)

// Reply is the outcome of one orchestrated request. Source and
// Classification record provenance for observability only; they never alter
// downstream control flow. Text is HTML-unsafe: rendering collaborators must
// escape it before converting the limited markdown subset (bold delimiters,
// line breaks).
type Reply struct {
	Text   string
	Source string

	// ErrorDetail carries the gateway failure detail when the reply was
	// degraded to fallback by a failed attempt. Empty otherwise.
	ErrorDetail string

	// Classification buckets the gateway failure, when there was one.
	Classification openai.Classification
}
