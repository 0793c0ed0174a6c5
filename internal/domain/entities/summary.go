package entities

// StructuredSummary is the semantically-typed summary object produced by the
// summarization capability and stored on a Translation as one JSONB value.
type StructuredSummary struct {
	Summary      string   `json:"summary"`
	ActionItems  []string `json:"action_items"`
	KeyPoints    []string `json:"key_points"`
	Participants []string `json:"participants,omitempty"`
	Decisions    []string `json:"decisions,omitempty"`
}

// Normalize replaces nil slices with empty ones so JSON output always carries
// arrays and range loops never nil-check.
func (s *StructuredSummary) Normalize() {
	if s.ActionItems == nil {
		s.ActionItems = []string{}
	}
	if s.KeyPoints == nil {
		s.KeyPoints = []string{}
	}
}

// IsEmpty reports whether the summary carries no information at all.
func (s *StructuredSummary) IsEmpty() bool {
	return s.Summary == "" &&
		len(s.ActionItems) == 0 &&
		len(s.KeyPoints) == 0 &&
		len(s.Participants) == 0 &&
		len(s.Decisions) == 0
}

// NewFallbackSummary wraps raw text as a degraded summary with empty item
// lists, used when the model output cannot be parsed.
func NewFallbackSummary(raw string) StructuredSummary {
	return StructuredSummary{
		Summary:     raw,
		ActionItems: []string{},
		KeyPoints:   []string{},
	}
}
