package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meeting is one unit of submitted source content, typed by the user or
// extracted from a photographed page. OriginalContent is immutable after
// creation; translations are derived artifacts and never write back to it.
type Meeting struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_meetings_user_created,priority:1"`
	Title            string    `json:"title" gorm:"type:varchar(500);not null"`
	OriginalContent  string    `json:"original_content" gorm:"type:text;not null"`
	DetectedLanguage *string   `json:"detected_language,omitempty" gorm:"type:varchar(16)"`

	// Set only when the content was extracted from an uploaded image.
	ImageURL *string `json:"image_url,omitempty" gorm:"type:varchar(1000)"`
	ImageKey *string `json:"image_key,omitempty" gorm:"type:varchar(500)"`

	Translations []Translation `json:"-" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_meetings_user_created,priority:2,sort:desc"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting from typed content.
func NewMeeting(userID uuid.UUID, title, content string) *Meeting {
	return &Meeting{
		UserID:          userID,
		Title:           strings.TrimSpace(title),
		OriginalContent: content,
	}
}

// NewMeetingFromImage creates a meeting whose content came out of OCR.
func NewMeetingFromImage(userID uuid.UUID, title, extractedText string, imageURL, imageKey string) *Meeting {
	m := NewMeeting(userID, title, extractedText)
	m.ImageURL = &imageURL
	m.ImageKey = &imageKey
	return m
}

// SetDetectedLanguage records the detected source language; empty codes are
// stored as NULL rather than "".
func (m *Meeting) SetDetectedLanguage(code string) {
	code = strings.TrimSpace(code)
	if code == "" {
		m.DetectedLanguage = nil
		return
	}
	m.DetectedLanguage = &code
}

// SourceLanguage returns the detected language code or "" when unknown.
func (m *Meeting) SourceLanguage() string {
	if m.DetectedLanguage == nil {
		return ""
	}
	return *m.DetectedLanguage
}

// SourcedFromImage reports whether the content was OCR-extracted.
func (m *Meeting) SourcedFromImage() bool {
	return m.ImageKey != nil && *m.ImageKey != ""
}

// Validate validates meeting data
func (m *Meeting) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}
	if strings.TrimSpace(m.OriginalContent) == "" {
		return ErrInvalidContent
	}
	return nil
}
