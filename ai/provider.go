// Package ai defines the interface for language-model providers used
// by the question pipeline, plus concrete backends.
//
// Design decisions:
//   - Provider is an interface so we can swap backends (OpenAI,
//     Anthropic, Ollama, etc.) without changing pipeline code.
//   - All methods accept context for cancellation.
//   - Each call is single-shot request/response: no retries, no
//     streaming, no caching.
package ai

import (
	"context"
)

// Message represents a chat message.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Provider is the interface all AI backends must implement.
type Provider interface {
	// GenerateSQL maps a schema description and an English question to
	// a single SQL statement. The raw model output may include markdown
	// fencing; callers strip it with ExtractSQL.
	GenerateSQL(ctx context.Context, schemaContext string, question string) (string, error)

	// FormatAnswer renders query results as a natural-language answer
	// to the original question.
	FormatAnswer(ctx context.Context, question string, sql string, results string) (string, error)

	// Name returns the provider name for display.
	Name() string
}
