package summarize

import (
	"strings"
	"testing"
)

func TestLanguageName(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{name: "english", code: "en", want: "English"},
		{name: "russian", code: "ru", want: "русском языке"},
		{name: "japanese", code: "ja", want: "日本語"},
		{name: "unrecognized falls back to English", code: "xx", want: "English"},
		{name: "empty falls back to English", code: "", want: "English"},
		{name: "case sensitive lookup", code: "EN", want: "English"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LanguageName(tt.code); got != tt.want {
				t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("meeting about roadmap", "español")

	if !strings.Contains(prompt, "meeting about roadmap") {
		t.Error("prompt missing transcription text")
	}
	if strings.Count(prompt, "español") != 2 {
		t.Errorf("expected language name twice in prompt, got %d occurrences", strings.Count(prompt, "español"))
	}

	// The four structured sections are a fixed part of the template.
	for _, section := range []string{"Main Topics", "Key Points", "Conclusions", "Additional Details"} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
}

func TestSystemPrompt(t *testing.T) {
	got := systemPrompt("Deutsch")
	if !strings.Contains(got, "Deutsch") {
		t.Errorf("system prompt missing language name: %q", got)
	}
}
