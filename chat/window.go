package chat

import "github.com/foodhubco/foodbot/pkg/openai"

// HistoryLimit is the number of most recent turns carried into a context
// window. Older history is ignored.
const HistoryLimit = 10

// Window builds the exact ordered message list for one completion request:
// the system directive first, then at most the last HistoryLimit turns of
// history in their original order, then the current message as the trailing
// user message. Turns with empty text are dropped so no message in the
// window has empty content.
//
// Window is a pure transformation. Validating that message is non-empty is
// the orchestrator's job.
func Window(systemPrompt string, history []Turn, message string) []openai.Message {
	messages := make([]openai.Message, 0, HistoryLimit+2)
	messages = append(messages, openai.Message{Role: openai.RoleSystem, Content: systemPrompt})

	recent := history
	if len(recent) > HistoryLimit {
		recent = recent[len(recent)-HistoryLimit:]
	}

	for _, turn := range recent {
		if turn.Text == "" {
			continue
		}

		role := openai.RoleAssistant
		if turn.Role == RoleUser {
			role = openai.RoleUser
		}
		messages = append(messages, openai.Message{Role: role, Content: turn.Text})
	}

	return append(messages, openai.Message{Role: openai.RoleUser, Content: message})
}
