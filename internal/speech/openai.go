package speech

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using the OpenAI Whisper API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a Whisper-backed provider. An empty model
// selects whisper-1.
func NewOpenAIProvider(client *openai.Client, model string) *OpenAIProvider {
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAIProvider{client: client, model: model}
}

// Transcribe sends the audio file to the Whisper API and returns the
// recognized text. A single call, no retries; failures surface to the caller.
func (p *OpenAIProvider) Transcribe(ctx context.Context, req Request) (*Result, error) {
	audioReq := openai.AudioRequest{
		Model:    p.model,
		FilePath: req.AudioPath,
		Language: languageHint(req.Language),
	}

	resp, err := p.client.CreateTranscription(ctx, audioReq)
	if err != nil {
		return nil, fmt.Errorf("whisper transcription: %w", err)
	}

	return &Result{
		Text:     resp.Text,
		Language: resp.Language,
	}, nil
}

// languageHint converts the user-facing language value into the hint passed
// to the engine. The auto sentinel (and an unset value) means no hint.
func languageHint(language string) string {
	if language == "" || language == LanguageAuto {
		return ""
	}
	return language
}

var _ Provider = (*OpenAIProvider)(nil)
