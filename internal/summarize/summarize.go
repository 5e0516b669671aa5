// Package summarize defines the summarization provider boundary for turning
// transcription text into structured multi-language summaries.
package summarize

import "context"

// Request holds parameters for a summarization call.
type Request struct {
	// Text is the transcription text to summarize.
	Text string
	// Language is the requested target language code (e.g. "en", "ru").
	// Unrecognized codes fall back to English content.
	Language string
}

// Result holds the outcome of a summarization call.
type Result struct {
	// Summary is the generated structured summary text.
	Summary string
	// Model is the model that produced the summary, when reported.
	Model string
}

// Provider is the interface that summarization backends must implement.
type Provider interface {
	Summarize(ctx context.Context, req Request) (*Result, error)
}
