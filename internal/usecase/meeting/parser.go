package meeting

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lingonote/lingonote/internal/domain/entities"
)

// Parser handles parsing of model responses into typed values
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseStructuredSummary parses the summarization model output into a
// StructuredSummary. The model is told to answer with bare JSON but tends to
// wrap it in markdown fences anyway.
func (p *Parser) ParseStructuredSummary(raw string) (entities.StructuredSummary, error) {
	jsonString := extractJSON(raw)

	var summary entities.StructuredSummary
	if err := json.Unmarshal([]byte(jsonString), &summary); err != nil {
		return entities.StructuredSummary{}, fmt.Errorf("failed to parse summary JSON: %w", err)
	}

	if summary.Summary == "" && summary.IsEmpty() {
		return entities.StructuredSummary{}, fmt.Errorf("summary JSON carries no fields")
	}

	summary.Normalize()
	return summary, nil
}

// ocrResult is the JSON shape the OCR prompt asks for
type ocrResult struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// ParseOCRResult parses the OCR model output into extracted text and an
// optional detected language code.
func (p *Parser) ParseOCRResult(raw string) (text, language string, err error) {
	jsonString := extractJSON(raw)

	var result ocrResult
	if err := json.Unmarshal([]byte(jsonString), &result); err != nil {
		return "", "", fmt.Errorf("failed to parse OCR JSON: %w", err)
	}

	return strings.TrimSpace(result.Text), strings.TrimSpace(result.Language), nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
