package ai

import (
	"fmt"
	"strings"
)

const translatePromptTemplate = `You are a professional translator. Translate the meeting notes below into %s.
Preserve the structure of the input: keep line breaks, bullet points and numbered lists where they appear.
Return ONLY the translated text, with no introduction, explanation or markdown fences.
%s
Meeting notes:
%s`

const detectLanguagePromptTemplate = `Identify the language of the text below.
Respond with ONLY the two-letter ISO 639-1 code (for example: en, es, ja). No other words.

Text:
%s`

const summarizePromptTemplate = `You are an assistant that analyzes meeting notes.
Read the notes below and respond with a single JSON object, without markdown fences, using exactly these keys:
{
  "summary": "a 2-4 sentence overview of the meeting",
  "action_items": ["each concrete task that was assigned or agreed"],
  "key_points": ["the main points that were discussed"],
  "participants": ["names of people mentioned as attending"],
  "decisions": ["decisions that were made"]
}
Use an empty array when a list has no entries. Write all values in the same language as the notes.

Meeting notes:
%s`

const extractTextPromptTemplate = `The attached image is a photo of meeting notes (typed or handwritten).
Extract ALL readable text exactly as written, preserving line breaks.
Respond with a single JSON object, without markdown fences, using exactly these keys:
{"text": "the extracted text", "language": "two-letter ISO 639-1 code of that text, or an empty string if unclear"}
If the image contains no readable text, use an empty string for "text".`

// BuildTranslatePrompt assembles the translate prompt. sourceLanguage is an
// optional hint and may be empty.
func BuildTranslatePrompt(content, targetLanguage, sourceLanguage string) string {
	hint := ""
	if strings.TrimSpace(sourceLanguage) != "" {
		hint = fmt.Sprintf("The source language is %q.\n", sourceLanguage)
	}
	return fmt.Sprintf(translatePromptTemplate, targetLanguage, hint, content)
}

// BuildDetectLanguagePrompt assembles the language detection prompt.
func BuildDetectLanguagePrompt(content string) string {
	return fmt.Sprintf(detectLanguagePromptTemplate, content)
}

// BuildSummarizePrompt assembles the summarization prompt.
func BuildSummarizePrompt(content string) string {
	return fmt.Sprintf(summarizePromptTemplate, content)
}

// ExtractTextPrompt is the OCR instruction sent alongside the image bytes.
func ExtractTextPrompt() string {
	return extractTextPromptTemplate
}
