package ai

import (
	"context"
	"fmt"
	"strings"
)

// TranslationProvider is the capability boundary for translation and language
// detection. Two implementations exist: GeminiClient (cloud) and OllamaClient
// (local). FallbackProvider decorates a primary with a one-shot fallback.
// Selection happens once at startup, never per request.
type TranslationProvider interface {
	// Translate renders content into targetLanguage. sourceLanguage is an
	// optional hint ("" when unknown) and never changes what gets translated.
	Translate(ctx context.Context, content, targetLanguage, sourceLanguage string) (string, error)

	// DetectLanguage returns a short ISO 639-1 style code for the content.
	DetectLanguage(ctx context.Context, content string) (string, error)
}

// normalizeLanguageCode cleans a model answer down to a bare language code.
// Models occasionally wrap the code in quotes, punctuation or a sentence.
func normalizeLanguageCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	code = strings.Trim(code, "\"'`.")
	if i := strings.IndexAny(code, " \t\n"); i > 0 {
		code = code[:i]
	}
	code = strings.ToLower(strings.Trim(code, "\"'`."))
	if code == "" {
		return "", fmt.Errorf("empty language code in model response %q", raw)
	}
	if len(code) > 16 {
		return "", fmt.Errorf("implausible language code in model response %q", raw)
	}
	return code, nil
}
