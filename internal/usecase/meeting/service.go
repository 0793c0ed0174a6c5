package meeting

import (
	"context"

	"github.com/google/uuid"
	"github.com/lingonote/lingonote/internal/domain/entities"
	"github.com/lingonote/lingonote/internal/domain/repositories"
)

// Service defines the meeting workflow use case: creation (typed or OCR),
// the cached translate path, export and CRUD.
type Service interface {
	// CreateFromText creates a meeting from typed content, detecting its language
	CreateFromText(ctx context.Context, input CreateFromTextInput) (*entities.Meeting, error)

	// CreateFromImage stores the image, runs OCR and creates a meeting from
	// the extracted text
	CreateFromImage(ctx context.Context, input CreateFromImageInput) (*entities.Meeting, error)

	// Translate returns the cached translation for (meetingID, targetLanguage),
	// producing and caching it on first request
	Translate(ctx context.Context, meetingID uint, targetLanguage string) (*entities.Translation, error)

	// GetTranslation returns the cached translation for the pair, or a
	// not-found error when none is cached
	GetTranslation(ctx context.Context, meetingID uint, targetLanguage string) (*entities.Translation, error)

	// Export renders the fixed-section summary document for an already
	// cached translation. It never triggers translation.
	Export(ctx context.Context, meetingID uint, targetLanguage string) (string, error)

	// List returns the caller's meetings, newest first
	List(ctx context.Context, userID uuid.UUID, filters repositories.MeetingFilters) ([]*entities.Meeting, error)

	// Get returns one meeting by id
	Get(ctx context.Context, meetingID uint) (*entities.Meeting, error)

	// Delete removes a meeting, its translations and its stored image blob
	Delete(ctx context.Context, meetingID uint) error
}

// CreateFromTextInput represents input for creating a meeting from typed text
type CreateFromTextInput struct {
	UserID  uuid.UUID
	Title   string
	Content string
}

// CreateFromImageInput represents input for creating a meeting from an image.
// Data holds the decoded image bytes; DeclaredSize is the size the caller
// claimed, validated before anything else happens.
type CreateFromImageInput struct {
	UserID       uuid.UUID
	Title        string
	Data         []byte
	MimeType     string
	DeclaredSize int64
}

// Summarizer produces the structured-summary model output for a text.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// TextExtractor runs OCR over an image URL and returns the raw model output.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageURL string) (string, error)
}

// BlobStore stores image bytes under a key and returns a retrieval URL.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, mimeType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
