package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructuredSummary_PlainJSON(t *testing.T) {
	p := NewParser()

	got, err := p.ParseStructuredSummary(`{
		"summary": "Planning recap",
		"action_items": ["Book the venue"],
		"key_points": ["Launch slips a week"],
		"participants": ["Ana", "Luis"],
		"decisions": ["Go with vendor B"]
	}`)
	require.NoError(t, err)

	assert.Equal(t, "Planning recap", got.Summary)
	assert.Equal(t, []string{"Book the venue"}, got.ActionItems)
	assert.Equal(t, []string{"Launch slips a week"}, got.KeyPoints)
	assert.Equal(t, []string{"Ana", "Luis"}, got.Participants)
	assert.Equal(t, []string{"Go with vendor B"}, got.Decisions)
}

func TestParseStructuredSummary_MarkdownFenced(t *testing.T) {
	p := NewParser()

	fenced := "```json\n{\"summary\":\"Recap\",\"action_items\":[],\"key_points\":[]}\n```"
	got, err := p.ParseStructuredSummary(fenced)
	require.NoError(t, err)
	assert.Equal(t, "Recap", got.Summary)

	bare := "```\n{\"summary\":\"Recap\"}\n```"
	got, err = p.ParseStructuredSummary(bare)
	require.NoError(t, err)
	assert.Equal(t, "Recap", got.Summary)
}

func TestParseStructuredSummary_NormalizesNilSlices(t *testing.T) {
	p := NewParser()

	got, err := p.ParseStructuredSummary(`{"summary":"Recap"}`)
	require.NoError(t, err)
	assert.NotNil(t, got.ActionItems)
	assert.NotNil(t, got.KeyPoints)
	assert.Empty(t, got.ActionItems)
}

func TestParseStructuredSummary_Malformed(t *testing.T) {
	p := NewParser()

	_, err := p.ParseStructuredSummary("Sure! Here is your summary:")
	assert.Error(t, err)

	_, err = p.ParseStructuredSummary("{}")
	assert.Error(t, err, "a JSON object with no fields is not a summary")
}

func TestParseOCRResult(t *testing.T) {
	p := NewParser()

	text, lang, err := p.ParseOCRResult("```json\n{\"text\":\"  Agenda for Monday \",\"language\":\" en \"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Agenda for Monday", text)
	assert.Equal(t, "en", lang)

	text, lang, err = p.ParseOCRResult(`{"text":"","language":""}`)
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Empty(t, lang)

	_, _, err = p.ParseOCRResult("I could not read the image, sorry.")
	assert.Error(t, err)
}
