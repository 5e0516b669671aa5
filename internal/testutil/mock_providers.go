// mock_providers.go - Mock speech and summarization providers for testing
package testutil

import (
	"context"
	"sync"

	"github.com/voicescribe/backend/internal/speech"
	"github.com/voicescribe/backend/internal/summarize"
)

// MockSpeech implements speech.Provider for testing
type MockSpeech struct {
	mu sync.Mutex

	// Text is returned as the recognized text on success.
	Text string
	// Err, when set, is returned by Transcribe.
	Err error
	// Calls records every request received.
	Calls []speech.Request
}

func (m *MockSpeech) Transcribe(_ context.Context, req speech.Request) (*speech.Result, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return &speech.Result{Text: m.Text}, nil
}

var _ speech.Provider = (*MockSpeech)(nil)

// MockSummarizer implements summarize.Provider for testing
type MockSummarizer struct {
	mu sync.Mutex

	// SummaryText is returned as the generated summary on success.
	SummaryText string
	// Err, when set, is returned by Summarize.
	Err error
	// Calls records every request received.
	Calls []summarize.Request
}

func (m *MockSummarizer) Summarize(_ context.Context, req summarize.Request) (*summarize.Result, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return &summarize.Result{Summary: m.SummaryText}, nil
}

var _ summarize.Provider = (*MockSummarizer)(nil)
