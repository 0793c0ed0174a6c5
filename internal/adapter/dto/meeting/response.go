package meeting

import "time"

// CreateMeetingResponse represents the response after creating a meeting from text
type CreateMeetingResponse struct {
	ID               uint    `json:"id"`
	DetectedLanguage *string `json:"detected_language"`
}

// CreateMeetingFromImageResponse represents the response after creating a
// meeting from an image
type CreateMeetingFromImageResponse struct {
	ID               uint    `json:"id"`
	DetectedLanguage *string `json:"detected_language"`
	ExtractedText    string  `json:"extracted_text"`
	ImageURL         string  `json:"image_url"`
}

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	OriginalContent  string    `json:"original_content"`
	DetectedLanguage *string   `json:"detected_language,omitempty"`
	ImageURL         *string   `json:"image_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TranslationResponse represents a cached translation in responses. Summary
// and ActionItems are lifted out of the stored structured summary; the full
// object is carried in StructuredSummary.
type TranslationResponse struct {
	ID                uint                      `json:"id"`
	MeetingID         uint                      `json:"meeting_id"`
	TargetLanguage    string                    `json:"target_language"`
	TranslatedContent string                    `json:"translated_content"`
	Summary           string                    `json:"summary"`
	ActionItems       []string                  `json:"action_items"`
	StructuredSummary StructuredSummaryResponse `json:"structured_summary"`
	CreatedAt         time.Time                 `json:"created_at"`
}

// StructuredSummaryResponse represents the structured summary object
type StructuredSummaryResponse struct {
	Summary      string   `json:"summary"`
	ActionItems  []string `json:"action_items"`
	KeyPoints    []string `json:"key_points"`
	Participants []string `json:"participants,omitempty"`
	Decisions    []string `json:"decisions,omitempty"`
}

// ExportResponse represents the rendered export document
type ExportResponse struct {
	Content string `json:"content"`
}

// DeleteMeetingResponse represents the response after deleting a meeting
type DeleteMeetingResponse struct {
	Success bool `json:"success"`
}
