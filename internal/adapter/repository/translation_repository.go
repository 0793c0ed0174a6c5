package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lingonote/lingonote/internal/domain/entities"
	"github.com/lingonote/lingonote/internal/domain/repositories"
)

// translationRepository implements the TranslationRepository interface using GORM
type translationRepository struct {
	db *gorm.DB
}

// NewTranslationRepository creates a new translation repository
func NewTranslationRepository(db *gorm.DB) repositories.TranslationRepository {
	return &translationRepository{db: db}
}

// FindByMeetingAndLanguage returns the cached translation for the pair, or
// nil when none exists.
func (r *translationRepository) FindByMeetingAndLanguage(ctx context.Context, meetingID uint, targetLanguage string) (*entities.Translation, error) {
	var translation entities.Translation
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND target_language = ?", meetingID, targetLanguage).
		First(&translation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find translation: %w", err)
	}
	return &translation, nil
}

// CreateIfAbsent inserts the translation with ON CONFLICT (meeting_id,
// target_language) DO NOTHING. When the insert is skipped because a
// concurrent writer already holds the pair, the existing row is re-read and
// returned untouched.
func (r *translationRepository) CreateIfAbsent(ctx context.Context, translation *entities.Translation) (*entities.Translation, bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "target_language"}},
			DoNothing: true,
		}).
		Create(translation)

	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to create translation: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		return translation, true, nil
	}

	// Conflict: another request inserted the pair first. Serve its row.
	existing, err := r.FindByMeetingAndLanguage(ctx, translation.MeetingID, translation.TargetLanguage)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("translation for meeting %d language %q vanished after conflict", translation.MeetingID, translation.TargetLanguage)
	}
	return existing, false, nil
}

// FindByMeeting returns every cached translation for a meeting
func (r *translationRepository) FindByMeeting(ctx context.Context, meetingID uint) ([]*entities.Translation, error) {
	var translations []*entities.Translation
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&translations).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}
	return translations, nil
}
