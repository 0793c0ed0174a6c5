package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lingonote/lingonote/pkg/config"
)

// OllamaClient is the local TranslationProvider, talking to an Ollama server
// on the local network. It covers translation and detection only; OCR and
// summarization always go through the cloud client.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaClient creates an Ollama client using values from the provided config.
func NewOllamaClient(cfg *config.OllamaConfig) *OllamaClient {
	return &OllamaClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// generateRequest is the shape for /api/generate requests
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is a minimal response shape
type generateResponse struct {
	Response string `json:"response"`
}

// Translate implements TranslationProvider.
func (o *OllamaClient) Translate(ctx context.Context, content, targetLanguage, sourceLanguage string) (string, error) {
	text, err := o.generate(ctx, BuildTranslatePrompt(content, targetLanguage, sourceLanguage))
	if err != nil {
		return "", fmt.Errorf("ollama translate: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// DetectLanguage implements TranslationProvider.
func (o *OllamaClient) DetectLanguage(ctx context.Context, content string) (string, error) {
	text, err := o.generate(ctx, BuildDetectLanguagePrompt(content))
	if err != nil {
		return "", fmt.Errorf("ollama detect language: %w", err)
	}
	return normalizeLanguageCode(text)
}

// generate sends one non-streaming completion request.
func (o *OllamaClient) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: false,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := o.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", err
	}
	if gr.Response == "" {
		return "", fmt.Errorf("empty response from ollama")
	}
	return gr.Response, nil
}
