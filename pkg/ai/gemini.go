package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/lingonote/lingonote/pkg/config"
)

// GeminiClient is the cloud implementation of every remote capability:
// translation, language detection, summarization and OCR over image URLs.
type GeminiClient struct {
	client     *genai.Client
	model      string
	downloader *http.Client
}

// NewGeminiClient creates a Gemini client from config.
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		client:     client,
		model:      cfg.Model,
		downloader: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Translate implements TranslationProvider.
func (g *GeminiClient) Translate(ctx context.Context, content, targetLanguage, sourceLanguage string) (string, error) {
	prompt := BuildTranslatePrompt(content, targetLanguage, sourceLanguage)
	text, err := g.generate(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini translate: %w", err)
	}
	return text, nil
}

// DetectLanguage implements TranslationProvider.
func (g *GeminiClient) DetectLanguage(ctx context.Context, content string) (string, error) {
	prompt := BuildDetectLanguagePrompt(content)
	text, err := g.generate(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini detect language: %w", err)
	}
	return normalizeLanguageCode(text)
}

// Summarize asks the model for the structured summary JSON and returns the
// raw model text. Parsing stays with the caller.
func (g *GeminiClient) Summarize(ctx context.Context, content string) (string, error) {
	prompt := BuildSummarizePrompt(content)
	text, err := g.generate(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini summarize: %w", err)
	}
	return text, nil
}

// ExtractText downloads the image behind imageURL and asks the model for the
// OCR JSON payload. Returns the raw model text; parsing stays with the caller.
func (g *GeminiClient) ExtractText(ctx context.Context, imageURL string) (string, error) {
	data, mimeType, err := g.download(ctx, imageURL)
	if err != nil {
		return "", fmt.Errorf("gemini ocr: download image: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(ExtractTextPrompt()),
		genai.NewPartFromBytes(data, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	text, err := g.generate(ctx, contents)
	if err != nil {
		return "", fmt.Errorf("gemini ocr: %w", err)
	}
	return text, nil
}

// generate runs one GenerateContent call and flattens the first candidate
// into plain text.
func (g *GeminiClient) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}

func (g *GeminiClient) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := g.downloader.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return data, mimeType, nil
}
