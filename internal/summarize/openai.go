package summarize

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// Generation bounds for summary calls.
	maxTokens   = 1500
	temperature = 0.3
)

// OpenAIProvider implements Provider using the OpenAI chat completion API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a chat-completion-backed provider. An empty
// model selects gpt-4.
func NewOpenAIProvider(client *openai.Client, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAIProvider{client: client, model: model}
}

// Summarize generates a structured summary of the request text in the
// requested target language. A single call, no retries.
func (p *OpenAIProvider) Summarize(ctx context.Context, req Request) (*Result, error) {
	name := LanguageName(req.Language)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(name)},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req.Text, name)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	return &Result{
		Summary: resp.Choices[0].Message.Content,
		Model:   resp.Model,
	}, nil
}

var _ Provider = (*OpenAIProvider)(nil)
