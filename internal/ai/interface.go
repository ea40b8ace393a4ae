// README: AI provider contracts.
package ai

import "context"

// Generator produces free-form text from a prompt. Used to phrase
// clarification questions in a natural, friendly tone.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IntentParser analyzes a Vietnamese user message and extracts a
// structured bookstore intent. This interface allows swapping providers
// (Gemini, OpenAI, ...) without touching the conversation logic.
type IntentParser interface {
	ParseIntent(ctx context.Context, userMessage string) (*IntentResult, error)
}

// Fallback is the apology sent when the model stays unavailable after
// all retries.
const Fallback = "Xin lỗi, hiện tại hệ thống đang bận. Vui lòng thử lại sau 🕐."
