package ai

import (
	"context"

	"go.uber.org/zap"
)

// FallbackProvider decorates a primary TranslationProvider with a secondary
// one. When the primary call fails it retries exactly once against the
// secondary. One retry, one alternative implementation; never a loop.
type FallbackProvider struct {
	primary   TranslationProvider
	secondary TranslationProvider
	logger    *zap.Logger
}

// NewFallbackProvider wires primary and secondary providers together.
func NewFallbackProvider(primary, secondary TranslationProvider, logger *zap.Logger) *FallbackProvider {
	return &FallbackProvider{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// Translate implements TranslationProvider.
func (f *FallbackProvider) Translate(ctx context.Context, content, targetLanguage, sourceLanguage string) (string, error) {
	text, err := f.primary.Translate(ctx, content, targetLanguage, sourceLanguage)
	if err == nil {
		return text, nil
	}

	if f.logger != nil {
		f.logger.Warn("⚠️ Primary translate failed, retrying once on fallback provider",
			zap.String("target_language", targetLanguage),
			zap.Error(err))
	}
	return f.secondary.Translate(ctx, content, targetLanguage, sourceLanguage)
}

// DetectLanguage implements TranslationProvider.
func (f *FallbackProvider) DetectLanguage(ctx context.Context, content string) (string, error) {
	code, err := f.primary.DetectLanguage(ctx, content)
	if err == nil {
		return code, nil
	}

	if f.logger != nil {
		f.logger.Warn("⚠️ Primary language detection failed, retrying once on fallback provider",
			zap.Error(err))
	}
	return f.secondary.DetectLanguage(ctx, content)
}
