// Package speech defines the speech-to-text provider boundary and common
// types for interacting with remote recognition backends.
package speech

import "context"

// LanguageAuto is the sentinel language value that lets the recognition
// engine detect the spoken language itself.
const LanguageAuto = "auto"

// Request holds parameters for a recognition call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string
	// Filename is the original upload name, used as a format hint.
	Filename string
	// Language is the expected language code (e.g. "en"), or LanguageAuto.
	Language string
}

// Result holds the outcome of a recognition call.
type Result struct {
	// Text is the full recognized text.
	Text string
	// Language is the detected language, when the backend reports one.
	Language string
}

// Provider is the interface that speech-to-text backends must implement.
type Provider interface {
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
