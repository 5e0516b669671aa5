package summarize

import "fmt"

// languageNames maps target language codes to the display names used inside
// the prompt. Unrecognized codes resolve to English.
var languageNames = map[string]string{
	"ru": "русском языке",
	"en": "English",
	"es": "español",
	"fr": "français",
	"de": "Deutsch",
	"it": "italiano",
	"pt": "português",
	"ja": "日本語",
	"ko": "한국어",
	"zh": "中文",
	"ar": "العربية",
}

const fallbackLanguageName = "English"

// LanguageName resolves a language code to the display name used in prompts.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return fallbackLanguageName
}

const promptTemplate = `Please create a structured summary of the following transcription in %s.

Format the summary with these sections:
1. **Основные темы** (Main Topics) - key themes discussed
2. **Ключевые моменты** (Key Points) - most important points mentioned
3. **Выводы и заключения** (Conclusions) - main conclusions or takeaways
4. **Дополнительные детали** (Additional Details) - any noteworthy details

Make the summary comprehensive but concise, highlighting the most important information.

Transcription text:
%s

Please provide the summary in %s:`

// buildPrompt renders the fixed four-section summary prompt for the given
// transcription text and resolved language name.
func buildPrompt(text string, languageName string) string {
	return fmt.Sprintf(promptTemplate, languageName, text, languageName)
}

// systemPrompt renders the system instruction for the summarization call.
func systemPrompt(languageName string) string {
	return fmt.Sprintf("You are a helpful assistant that creates structured summaries in %s. Always format your response clearly with the requested sections.", languageName)
}
