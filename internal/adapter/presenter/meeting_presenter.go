package presenter

import (
	meetingDTO "github.com/lingonote/lingonote/internal/adapter/dto/meeting"
	"github.com/lingonote/lingonote/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}

	return &meetingDTO.MeetingResponse{
		ID:               m.ID,
		Title:            m.Title,
		OriginalContent:  m.OriginalContent,
		DetectedLanguage: m.DetectedLanguage,
		ImageURL:         m.ImageURL,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToMeetingListResponse converts a slice of Meeting entities to response DTOs
func ToMeetingListResponse(meetings []*entities.Meeting) []*meetingDTO.MeetingResponse {
	responses := make([]*meetingDTO.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return responses
}

// ToTranslationResponse converts a Translation entity to TranslationResponse
// DTO, lifting summary and action_items out of the stored structured summary.
func ToTranslationResponse(t *entities.Translation) *meetingDTO.TranslationResponse {
	if t == nil {
		return nil
	}

	summary := t.StructuredSummary()

	return &meetingDTO.TranslationResponse{
		ID:                t.ID,
		MeetingID:         t.MeetingID,
		TargetLanguage:    t.TargetLanguage,
		TranslatedContent: t.TranslatedContent,
		Summary:           summary.Summary,
		ActionItems:       summary.ActionItems,
		StructuredSummary: meetingDTO.StructuredSummaryResponse{
			Summary:      summary.Summary,
			ActionItems:  summary.ActionItems,
			KeyPoints:    summary.KeyPoints,
			Participants: summary.Participants,
			Decisions:    summary.Decisions,
		},
		CreatedAt: t.CreatedAt,
	}
}
