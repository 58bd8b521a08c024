package ai

import (
	"context"
	"fmt"
	"time"
)

// Placeholder is a mock AI provider for development. It answers every
// question with a fixed query against the employees table, so the rest
// of the pipeline can be exercised without credentials.
type Placeholder struct{}

var _ Provider = (*Placeholder)(nil)

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) Name() string {
	return "placeholder"
}

func (p *Placeholder) GenerateSQL(ctx context.Context, schemaContext string, question string) (string, error) {
	// Simulate network latency
	select {
	case <-time.After(300 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return "SELECT name, department, role FROM employees ORDER BY name LIMIT 5;", nil
}

func (p *Placeholder) FormatAnswer(ctx context.Context, question string, sql string, results string) (string, error) {
	select {
	case <-time.After(200 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return fmt.Sprintf("[Placeholder AI] You asked: %q\n\n"+
		"This is a canned response — configure a real AI provider (OpenAI, Anthropic, Ollama) to get actual answers.\n\n"+
		"Raw results:\n%s", question, results), nil
}
