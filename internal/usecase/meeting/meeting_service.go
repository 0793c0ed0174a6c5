package meeting

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	apperrors "github.com/lingonote/lingonote/errors"
	"github.com/lingonote/lingonote/internal/domain/entities"
	"github.com/lingonote/lingonote/internal/domain/repositories"
	usecaseErrors "github.com/lingonote/lingonote/internal/usecase/errors"
	pkgai "github.com/lingonote/lingonote/pkg/ai"
)

// MaxImageBytes is the upload cap for meeting images. Exactly this size is
// still accepted.
const MaxImageBytes int64 = 16 << 20 // 16 MiB

// allowedImageTypes maps accepted MIME types to the file extension used for
// the blob key.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// MeetingService orchestrates meeting creation, the cached translate path and
// export. It is the only writer of the translation cache.
type MeetingService struct {
	meetingRepo     repositories.MeetingRepository
	translationRepo repositories.TranslationRepository
	provider        pkgai.TranslationProvider
	summarizer      Summarizer
	extractor       TextExtractor
	blobStore       BlobStore
	parser          *Parser
	logger          *zap.Logger

	// translateGroup collapses concurrent translate calls for the same
	// (meeting, language) pair into one remote round trip.
	translateGroup singleflight.Group
}

// NewMeetingService constructs the meeting workflow service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	translationRepo repositories.TranslationRepository,
	provider pkgai.TranslationProvider,
	summarizer Summarizer,
	extractor TextExtractor,
	blobStore BlobStore,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo:     meetingRepo,
		translationRepo: translationRepo,
		provider:        provider,
		summarizer:      summarizer,
		extractor:       extractor,
		blobStore:       blobStore,
		parser:          NewParser(),
		logger:          logger,
	}
}

// CreateFromText creates a meeting from typed content. Language detection
// failure does not fail creation; the meeting is stored with no detected
// language.
func (s *MeetingService) CreateFromText(ctx context.Context, input CreateFromTextInput) (*entities.Meeting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.ErrInvalidArgument("Title must not be empty")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.ErrInvalidArgument("Content must not be empty")
	}

	m := entities.NewMeeting(input.UserID, input.Title, input.Content)

	code, err := s.provider.DetectLanguage(ctx, input.Content)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Language detection failed, storing meeting without a language",
				zap.Error(err))
		}
	} else {
		m.SetDetectedLanguage(code)
	}

	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create meeting", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Meeting created from text",
			zap.Uint("meeting_id", m.ID),
			zap.Stringp("detected_language", m.DetectedLanguage))
	}
	return m, nil
}

// CreateFromImage validates the upload, stores it, runs OCR and creates a
// meeting from the extracted text. Validation failures happen before any
// storage or remote call.
func (s *MeetingService) CreateFromImage(ctx context.Context, input CreateFromImageInput) (*entities.Meeting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.ErrInvalidArgument("Title must not be empty")
	}
	if input.DeclaredSize > MaxImageBytes {
		return nil, apperrors.ErrImageTooLarge(input.DeclaredSize, MaxImageBytes)
	}
	if int64(len(input.Data)) > MaxImageBytes {
		return nil, apperrors.ErrImageTooLarge(int64(len(input.Data)), MaxImageBytes)
	}
	if len(input.Data) == 0 {
		return nil, apperrors.ErrInvalidArgument("Image data must not be empty")
	}
	ext, ok := allowedImageTypes[input.MimeType]
	if !ok {
		return nil, apperrors.ErrUnsupportedImageType(input.MimeType)
	}

	key := buildImageKey(input.UserID, ext)
	imageURL, err := s.blobStore.Upload(ctx, key, input.Data, input.MimeType)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("upload image", err)
	}

	raw, err := s.extractor.ExtractText(ctx, imageURL)
	if err != nil {
		return nil, apperrors.ErrOCRFailed(err)
	}

	text, language, err := s.parser.ParseOCRResult(raw)
	if err != nil {
		return nil, apperrors.ErrOCRFailed(err)
	}
	if text == "" {
		// An image with no readable text is a user-input error, not a
		// meeting with empty content.
		return nil, apperrors.ErrNoTextExtracted()
	}

	m := entities.NewMeetingFromImage(input.UserID, input.Title, text, imageURL, key)
	m.SetDetectedLanguage(language)

	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create meeting", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Meeting created from image",
			zap.Uint("meeting_id", m.ID),
			zap.String("image_key", key),
			zap.Int("extracted_chars", len(text)))
	}
	return m, nil
}

// Translate is the cache-critical path. A cached pair is returned without any
// remote call; a miss performs translate + summarize once and writes through.
func (s *MeetingService) Translate(ctx context.Context, meetingID uint, targetLanguage string) (*entities.Translation, error) {
	targetLanguage = strings.TrimSpace(targetLanguage)
	if targetLanguage == "" {
		return nil, apperrors.ErrInvalidArgument("Target language must not be empty")
	}

	if cached := s.lookupCache(ctx, meetingID, targetLanguage); cached != nil {
		if s.logger != nil {
			s.logger.Info("🔄 Translation cache hit",
				zap.Uint("meeting_id", meetingID),
				zap.String("target_language", targetLanguage))
		}
		return cached, nil
	}

	key := fmt.Sprintf("%d|%s", meetingID, targetLanguage)
	result, err, _ := s.translateGroup.Do(key, func() (interface{}, error) {
		return s.translateMiss(ctx, meetingID, targetLanguage)
	})
	if err != nil {
		return nil, err
	}
	return result.(*entities.Translation), nil
}

// translateMiss runs inside the single-flight group: at most one execution
// per (meeting, language) key at a time.
func (s *MeetingService) translateMiss(ctx context.Context, meetingID uint, targetLanguage string) (*entities.Translation, error) {
	// A caller that queued behind the winning flight may find the row
	// already written.
	if cached := s.lookupCache(ctx, meetingID, targetLanguage); cached != nil {
		return cached, nil
	}

	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrMeetingNotFound(meetingID)
	}

	translated, err := s.provider.Translate(ctx, m.OriginalContent, targetLanguage, m.SourceLanguage())
	if err != nil {
		return nil, apperrors.ErrTranslationFailed(err)
	}

	summary := s.summarize(ctx, translated)

	t, err := entities.NewTranslation(meetingID, targetLanguage, translated, summary)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	stored, created, err := s.translationRepo.CreateIfAbsent(ctx, t)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("create translation", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Translation produced",
			zap.Uint("meeting_id", meetingID),
			zap.String("target_language", targetLanguage),
			zap.Bool("created", created))
	}
	return stored, nil
}

// summarize derives the structured summary from the translated content. Both
// a failed call and malformed output degrade to a raw-text summary instead of
// discarding the translation.
func (s *MeetingService) summarize(ctx context.Context, translated string) entities.StructuredSummary {
	raw, err := s.summarizer.Summarize(ctx, translated)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Summarization call failed, degrading to raw summary",
				zap.Error(err))
		}
		return entities.NewFallbackSummary(translated)
	}

	summary, err := s.parser.ParseStructuredSummary(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Summary output unparseable, degrading to raw summary",
				zap.Error(err))
		}
		return entities.NewFallbackSummary(strings.TrimSpace(raw))
	}
	return summary
}

// lookupCache returns the cached translation or nil. A store error degrades
// to a miss so the read path stays available; the subsequent write will fail
// loudly if the store really is down.
func (s *MeetingService) lookupCache(ctx context.Context, meetingID uint, targetLanguage string) *entities.Translation {
	cached, err := s.translationRepo.FindByMeetingAndLanguage(ctx, meetingID, targetLanguage)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Translation cache lookup failed, treating as miss",
				zap.Uint("meeting_id", meetingID),
				zap.String("target_language", targetLanguage),
				zap.Error(err))
		}
		return nil
	}
	return cached
}

// GetTranslation returns the cached translation for the pair or not-found.
// A store error on this read path degrades to not-found, like lookupCache.
func (s *MeetingService) GetTranslation(ctx context.Context, meetingID uint, targetLanguage string) (*entities.Translation, error) {
	targetLanguage = strings.TrimSpace(targetLanguage)
	cached := s.lookupCache(ctx, meetingID, targetLanguage)
	if cached == nil {
		return nil, apperrors.ErrTranslationNotFound(meetingID, targetLanguage)
	}
	return cached, nil
}

// Export renders the summary document for an already cached translation
func (s *MeetingService) Export(ctx context.Context, meetingID uint, targetLanguage string) (string, error) {
	targetLanguage = strings.TrimSpace(targetLanguage)

	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return "", apperrors.ErrMeetingNotFound(meetingID)
	}

	t := s.lookupCache(ctx, meetingID, targetLanguage)
	if t == nil {
		return "", apperrors.ErrTranslationNotFound(meetingID, targetLanguage)
	}

	return RenderExport(m, t, time.Now()), nil
}

// List returns the caller's meetings, newest first
func (s *MeetingService) List(ctx context.Context, userID uuid.UUID, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.FindByUser(ctx, userID, filters)
	if err != nil {
		// Reads degrade to an empty result during partial outages.
		if s.logger != nil {
			s.logger.Warn("⚠️ Meeting list failed, returning empty result",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
		return []*entities.Meeting{}, nil
	}
	return meetings, nil
}

// Get returns one meeting by id
func (s *MeetingService) Get(ctx context.Context, meetingID uint) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrMeetingNotFound(meetingID)
	}
	return m, nil
}

// Delete removes a meeting, all its translations and, for an image-sourced
// meeting, the stored image blob.
func (s *MeetingService) Delete(ctx context.Context, meetingID uint) error {
	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return apperrors.ErrMeetingNotFound(meetingID)
	}
	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		// The row can vanish between the check and the delete.
		if errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
			return apperrors.ErrMeetingNotFound(meetingID)
		}
		return apperrors.ErrDBQueryFailed("delete meeting", err)
	}

	// The database rows are gone; an orphaned blob is not worth failing the
	// request over.
	if m.SourcedFromImage() {
		if err := s.blobStore.Delete(ctx, *m.ImageKey); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Image blob removal failed, leaving orphan",
					zap.Uint("meeting_id", meetingID),
					zap.String("image_key", *m.ImageKey),
					zap.Error(err))
			}
		}
	}

	if s.logger != nil {
		s.logger.Info("✅ Meeting deleted", zap.Uint("meeting_id", meetingID))
	}
	return nil
}

// buildImageKey derives the blob key for an upload: owning user plus a fresh
// token, keeping the original extension.
func buildImageKey(userID uuid.UUID, ext string) string {
	name := uuid.New().String() + ext
	return filepath.ToSlash(filepath.Join("meetings", userID.String(), name))
}
