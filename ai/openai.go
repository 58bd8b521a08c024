package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI implements the Provider interface using the go-openai client.
// An endpoint override supports Azure-style deployments.
type OpenAI struct {
	client *openai.Client
	model  string
}

var _ Provider = (*OpenAI)(nil)

// NewOpenAI creates an OpenAI provider. An empty endpoint uses the
// public API; an empty model defaults to gpt-4o.
func NewOpenAI(apiKey, endpoint, model string) *OpenAI {
	if model == "" {
		model = "gpt-4o"
	}
	cfg := openai.DefaultConfig(apiKey)
	if endpoint != "" {
		cfg.BaseURL = endpoint
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model}
}

func (o *OpenAI) Name() string {
	return fmt.Sprintf("OpenAI (%s)", o.model)
}

func (o *OpenAI) GenerateSQL(ctx context.Context, schemaContext string, question string) (string, error) {
	return o.call(ctx, systemPromptGenerate, generateUserPrompt(schemaContext, question))
}

func (o *OpenAI) FormatAnswer(ctx context.Context, question string, sql string, results string) (string, error) {
	return o.call(ctx, systemPromptAnswer, answerUserPrompt(question, sql, results))
}

func (o *OpenAI) call(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
