package repositories

import (
	"context"

	"github.com/lingonote/lingonote/internal/domain/entities"
)

// TranslationRepository defines the interface for the translation cache.
// (meeting_id, target_language) is the cache key.
type TranslationRepository interface {
	// FindByMeetingAndLanguage returns the cached translation for the pair,
	// or nil when none exists.
	FindByMeetingAndLanguage(ctx context.Context, meetingID uint, targetLanguage string) (*entities.Translation, error)

	// CreateIfAbsent atomically inserts the translation unless one already
	// exists for its (meeting_id, target_language) pair. It returns the row
	// that ended up in the store and whether this call created it. The
	// existing row is never modified.
	CreateIfAbsent(ctx context.Context, translation *entities.Translation) (*entities.Translation, bool, error)

	// FindByMeeting returns every cached translation for a meeting.
	FindByMeeting(ctx context.Context, meetingID uint) ([]*entities.Translation, error)
}
