package entities

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Translation is the cached artifact for one (meeting, target language) pair:
// the translated text plus the structured summary derived from it. Rows are
// written once on the first translate request for the pair and never updated;
// deleting the owning meeting is the only way a row disappears.
type Translation struct {
	ID                uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	MeetingID         uint           `json:"meeting_id" gorm:"not null;uniqueIndex:idx_translations_meeting_language,priority:1"`
	TargetLanguage    string         `json:"target_language" gorm:"type:varchar(64);not null;uniqueIndex:idx_translations_meeting_language,priority:2"`
	TranslatedContent string         `json:"translated_content" gorm:"type:text;not null"`
	Summary           datatypes.JSON `json:"summary" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt         time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Translation
func (Translation) TableName() string {
	return "translations"
}

// NewTranslation builds the row for a freshly produced translation.
func NewTranslation(meetingID uint, targetLanguage, translatedContent string, summary StructuredSummary) (*Translation, error) {
	summary.Normalize()
	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}
	return &Translation{
		MeetingID:         meetingID,
		TargetLanguage:    strings.TrimSpace(targetLanguage),
		TranslatedContent: translatedContent,
		Summary:           payload,
	}, nil
}

// StructuredSummary decodes the stored summary value. A missing or corrupt
// payload yields a normalized empty summary instead of an error so read
// paths stay usable.
func (t *Translation) StructuredSummary() StructuredSummary {
	var s StructuredSummary
	if len(t.Summary) > 0 {
		_ = json.Unmarshal(t.Summary, &s)
	}
	s.Normalize()
	return s
}

// Validate validates translation data
func (t *Translation) Validate() error {
	if t.MeetingID == 0 {
		return ErrInvalidMeetingRef
	}
	if strings.TrimSpace(t.TargetLanguage) == "" {
		return ErrInvalidTargetLanguage
	}
	if strings.TrimSpace(t.TranslatedContent) == "" {
		return ErrInvalidContent
	}
	return nil
}
