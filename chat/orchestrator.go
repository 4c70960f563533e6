// Package chat implements the request orchestration for the FoodBot
// assistant: build a bounded context window, make a single attempt against
// the LLM gateway, and degrade to the rule-based responder on any failure so
// every request gets a reply.
package chat

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/foodhubco/foodbot/pkg/fallback"
	"github.com/foodhubco/foodbot/pkg/openai"
)

// ErrEmptyMessage is returned for an absent or blank message. It is the only
// error that crosses the service boundary; the HTTP layer surfaces it as a
// 400. Every other failure is absorbed into a fallback reply.
var ErrEmptyMessage = errors.New("message is required")

// Gateway is the orchestrator's single outbound dependency.
// *openai.Client satisfies it.
type Gateway interface {
	Complete(ctx context.Context, messages []openai.Message) (string, error)
}

// Orchestrator produces exactly one Reply per request. It holds no
// cross-request state beyond static configuration, so one instance serves
// concurrent requests without locking.
type Orchestrator struct {
	gateway Gateway // nil when no credential was configured at startup
	prompt  string
	logger  *zap.Logger
}

// New creates an Orchestrator. A nil gateway puts the process in permanent
// fallback-only mode; credential absence is decided once at startup, never
// re-checked per request. An empty systemPrompt selects the default persona.
func New(gateway Gateway, systemPrompt string, logger *zap.Logger) *Orchestrator {
	if systemPrompt == "" {
		systemPrompt = SystemPrompt
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		gateway: gateway,
		prompt:  systemPrompt,
		logger:  logger,
	}
}

// Configured reports whether the LLM path is available to this process.
func (o *Orchestrator) Configured() bool {
	return o.gateway != nil
}

// Reply runs the per-request state machine: validate, config check, build
// context, single gateway attempt, fallback. For any non-empty message it
// returns a Reply with non-empty text.
func (o *Orchestrator) Reply(ctx context.Context, message string, history []Turn) (*Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	if o.gateway == nil {
		return &Reply{Text: fallback.Respond(message), Source: SourceFallback}, nil
	}

	text, err := o.gateway.Complete(ctx, Window(o.prompt, history, message))
	if err != nil {
		classification := openai.Classify(err)
		detail := openai.Detail(err)

		o.logger.Warn("gateway attempt failed, degrading to fallback",
			zap.String("component", "orchestrator"),
			zap.String("classification", string(classification)),
			zap.String("detail", detail),
		)

		return &Reply{
			Text:           fallback.Respond(message),
			Source:         SourceFallback,
			ErrorDetail:    detail,
			Classification: classification,
		}, nil
	}

	return &Reply{Text: text, Source: SourceOpenAI}, nil
}
