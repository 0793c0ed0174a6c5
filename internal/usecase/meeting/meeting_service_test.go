package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lingonote/lingonote/errors"
	"github.com/lingonote/lingonote/internal/domain/entities"
	"github.com/lingonote/lingonote/internal/domain/repositories"
	usecaseErrors "github.com/lingonote/lingonote/internal/usecase/errors"
)

// fakeTranslationRepo is an in-memory translation cache keyed by
// (meeting_id, target_language), mirroring the unique index semantics.
type fakeTranslationRepo struct {
	mu      sync.Mutex
	rows    map[string]*entities.Translation
	nextID  uint
	findErr error
	// onCreate runs inside the CreateIfAbsent lock before the insert,
	// used to simulate a competing writer.
	onCreate func()
}

func newFakeTranslationRepo() *fakeTranslationRepo {
	return &fakeTranslationRepo{rows: make(map[string]*entities.Translation)}
}

func pairKey(meetingID uint, lang string) string {
	return fmt.Sprintf("%d|%s", meetingID, lang)
}

func (f *fakeTranslationRepo) FindByMeetingAndLanguage(_ context.Context, meetingID uint, lang string) (*entities.Translation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rows[pairKey(meetingID, lang)], nil
}

func (f *fakeTranslationRepo) CreateIfAbsent(_ context.Context, t *entities.Translation) (*entities.Translation, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.onCreate != nil {
		f.onCreate()
		f.onCreate = nil
	}
	key := pairKey(t.MeetingID, t.TargetLanguage)
	if existing, ok := f.rows[key]; ok {
		return existing, false, nil
	}
	f.nextID++
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	f.rows[key] = t
	return t, true, nil
}

func (f *fakeTranslationRepo) FindByMeeting(_ context.Context, meetingID uint) ([]*entities.Translation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entities.Translation
	for _, t := range f.rows {
		if t.MeetingID == meetingID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTranslationRepo) insertDirect(t *entities.Translation) {
	f.nextID++
	t.ID = f.nextID
	f.rows[pairKey(t.MeetingID, t.TargetLanguage)] = t
}

func (f *fakeTranslationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// fakeMeetingRepo keeps meetings in memory. Delete also drops the meeting's
// translations from the paired translation repo, matching the transactional
// cascade in the real repository.
type fakeMeetingRepo struct {
	mu           sync.Mutex
	rows         map[uint]*entities.Meeting
	nextID       uint
	translations *fakeTranslationRepo
	listErr      error
	// onDelete runs inside the Delete lock before the row check, used to
	// simulate a competing deleter.
	onDelete func()
}

func newFakeMeetingRepo(translations *fakeTranslationRepo) *fakeMeetingRepo {
	return &fakeMeetingRepo{rows: make(map[uint]*entities.Meeting), translations: translations}
}

func (f *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	m.ID = f.nextID
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	f.rows[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) FindByID(_ context.Context, id uint) (*entities.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return m, nil
}

func (f *fakeMeetingRepo) FindByUser(_ context.Context, userID uuid.UUID, _ repositories.MeetingFilters) ([]*entities.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entities.Meeting
	for _, m := range f.rows {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.onDelete != nil {
		f.onDelete()
		f.onDelete = nil
	}
	if _, ok := f.rows[id]; !ok {
		return usecaseErrors.ErrMeetingNotFound
	}
	delete(f.rows, id)
	if f.translations != nil {
		f.translations.mu.Lock()
		for key, t := range f.translations.rows {
			if t.MeetingID == id {
				delete(f.translations.rows, key)
			}
		}
		f.translations.mu.Unlock()
	}
	return nil
}

// fakeProvider counts remote calls and answers with canned output.
type fakeProvider struct {
	translateCalls atomic.Int64
	detectCalls    atomic.Int64
	translateErr   error
	detectErr      error
	detectCode     string
	delay          time.Duration
}

func (f *fakeProvider) Translate(_ context.Context, content, targetLanguage, _ string) (string, error) {
	f.translateCalls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.translateErr != nil {
		return "", f.translateErr
	}
	return fmt.Sprintf("[%s] %s", targetLanguage, content), nil
}

func (f *fakeProvider) DetectLanguage(_ context.Context, _ string) (string, error) {
	f.detectCalls.Add(1)
	if f.detectErr != nil {
		return "", f.detectErr
	}
	if f.detectCode == "" {
		return "en", nil
	}
	return f.detectCode, nil
}

type fakeSummarizer struct {
	calls  atomic.Int64
	output string
	err    error
}

func (f *fakeSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

type fakeExtractor struct {
	calls  atomic.Int64
	output string
	err    error
}

func (f *fakeExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

type fakeBlobStore struct {
	calls       atomic.Int64
	lastKey     string
	lastMime    string
	err         error
	deletedKeys []string
	deleteErr   error
}

func (f *fakeBlobStore) Upload(_ context.Context, key string, _ []byte, mimeType string) (string, error) {
	f.calls.Add(1)
	f.lastKey = key
	f.lastMime = mimeType
	if f.err != nil {
		return "", f.err
	}
	return "http://blob.local/" + key, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}

type serviceFixture struct {
	svc          *MeetingService
	meetings     *fakeMeetingRepo
	translations *fakeTranslationRepo
	provider     *fakeProvider
	summarizer   *fakeSummarizer
	extractor    *fakeExtractor
	blobs        *fakeBlobStore
}

func newFixture() *serviceFixture {
	translations := newFakeTranslationRepo()
	meetings := newFakeMeetingRepo(translations)
	provider := &fakeProvider{}
	summarizer := &fakeSummarizer{output: `{"summary":"Team sync recap","action_items":["Ship the report"],"key_points":["Deadline moved"]}`}
	extractor := &fakeExtractor{output: `{"text":"Notes from the whiteboard","language":"en"}`}
	blobs := &fakeBlobStore{}

	svc := NewMeetingService(meetings, translations, provider, summarizer, extractor, blobs, nil)
	return &serviceFixture{
		svc:          svc,
		meetings:     meetings,
		translations: translations,
		provider:     provider,
		summarizer:   summarizer,
		extractor:    extractor,
		blobs:        blobs,
	}
}

func (fx *serviceFixture) createMeeting(t *testing.T, content string) *entities.Meeting {
	t.Helper()
	m, err := fx.svc.CreateFromText(context.Background(), CreateFromTextInput{
		UserID:  uuid.New(),
		Title:   "Weekly sync",
		Content: content,
	})
	require.NoError(t, err)
	return m
}

func appErrorCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestCreateFromText_DetectsLanguage(t *testing.T) {
	fx := newFixture()
	fx.provider.detectCode = "ja"

	m := fx.createMeeting(t, "オフィス移転についての会議メモ")

	require.NotNil(t, m.DetectedLanguage)
	assert.Equal(t, "ja", *m.DetectedLanguage)
	assert.Equal(t, int64(1), fx.provider.detectCalls.Load())
}

func TestCreateFromText_DetectionFailureIsNotFatal(t *testing.T) {
	fx := newFixture()
	fx.provider.detectErr = errors.New("model unavailable")

	m := fx.createMeeting(t, "Hello, this is a test message for translation.")

	assert.Nil(t, m.DetectedLanguage)
	assert.NotZero(t, m.ID)
}

func TestCreateFromText_RejectsBlankInput(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.CreateFromText(context.Background(), CreateFromTextInput{
		UserID: uuid.New(), Title: "  ", Content: "something",
	})
	assert.Equal(t, apperrors.ErrorCode_INVALID_ARGUMENT, appErrorCode(t, err))

	_, err = fx.svc.CreateFromText(context.Background(), CreateFromTextInput{
		UserID: uuid.New(), Title: "title", Content: "\n\t ",
	})
	assert.Equal(t, apperrors.ErrorCode_INVALID_ARGUMENT, appErrorCode(t, err))
	assert.Equal(t, int64(0), fx.provider.detectCalls.Load())
}

func TestTranslate_FirstCallProducesAndCaches(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "Hello, this is a test message for translation.")

	first, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "[Spanish] Hello, this is a test message for translation.", first.TranslatedContent)
	assert.Equal(t, int64(1), fx.provider.translateCalls.Load())
	assert.Equal(t, int64(1), fx.summarizer.calls.Load())

	summary := first.StructuredSummary()
	assert.Equal(t, "Team sync recap", summary.Summary)
	assert.Equal(t, []string{"Ship the report"}, summary.ActionItems)

	second, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TranslatedContent, second.TranslatedContent)
	assert.Equal(t, int64(1), fx.provider.translateCalls.Load(), "cache hit must not call the provider")
	assert.Equal(t, int64(1), fx.summarizer.calls.Load(), "cache hit must not call the summarizer")
}

func TestTranslate_DistinctLanguagesCacheSeparately(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "Quarterly planning notes")

	_, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)
	_, err = fx.svc.Translate(context.Background(), m.ID, "French")
	require.NoError(t, err)

	assert.Equal(t, int64(2), fx.provider.translateCalls.Load())
	assert.Equal(t, 2, fx.translations.count())
}

func TestTranslate_DoesNotTouchOriginalContent(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "Immutable source text")

	_, err := fx.svc.Translate(context.Background(), m.ID, "German")
	require.NoError(t, err)

	stored, err := fx.meetings.FindByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Immutable source text", stored.OriginalContent)
}

func TestTranslate_MeetingNotFound(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.Translate(context.Background(), 999, "Spanish")
	assert.Equal(t, apperrors.ErrorCode_MEETING_NOT_FOUND, appErrorCode(t, err))
}

func TestTranslate_EmptyTargetLanguage(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	_, err := fx.svc.Translate(context.Background(), m.ID, "   ")
	assert.Equal(t, apperrors.ErrorCode_INVALID_ARGUMENT, appErrorCode(t, err))
}

func TestTranslate_ProviderFailureCachesNothing(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")
	fx.provider.translateErr = errors.New("rate limited")

	_, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	assert.Equal(t, apperrors.ErrorCode_AI_TRANSLATION_FAILED, appErrorCode(t, err))
	assert.Equal(t, 0, fx.translations.count())

	// The pair stays retryable after the failure.
	fx.provider.translateErr = nil
	got, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, 1, fx.translations.count())
	assert.NotEmpty(t, got.TranslatedContent)
}

func TestTranslate_SummarizerFailureDegradesToRawSummary(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "Budget approved for Q3")
	fx.summarizer.err = errors.New("timeout")

	got, err := fx.svc.Translate(context.Background(), m.ID, "French")
	require.NoError(t, err)

	summary := got.StructuredSummary()
	assert.Equal(t, got.TranslatedContent, summary.Summary)
	assert.Empty(t, summary.ActionItems)
	assert.Empty(t, summary.KeyPoints)
}

func TestTranslate_MalformedSummaryDegradesToRawOutput(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")
	fx.summarizer.output = "Sure! Here is the summary you asked for."

	got, err := fx.svc.Translate(context.Background(), m.ID, "French")
	require.NoError(t, err)

	summary := got.StructuredSummary()
	assert.Equal(t, "Sure! Here is the summary you asked for.", summary.Summary)
	assert.Empty(t, summary.ActionItems)
}

func TestTranslate_CacheLookupErrorTreatedAsMiss(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")
	fx.translations.findErr = errors.New("connection refused")

	got, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)
	assert.NotEmpty(t, got.TranslatedContent)
	assert.Equal(t, int64(1), fx.provider.translateCalls.Load())
}

func TestTranslate_LosesInsertRaceReturnsWinnerRow(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	winner, err := entities.NewTranslation(m.ID, "Spanish", "winner text", entities.NewFallbackSummary("winner text"))
	require.NoError(t, err)

	// A competing writer lands its row between this flight's cache check
	// and its insert.
	fx.translations.onCreate = func() {
		fx.translations.insertDirect(winner)
	}

	got, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "winner text", got.TranslatedContent)
	assert.Equal(t, 1, fx.translations.count())
}

func TestTranslate_ConcurrentCallsShareOneRemoteCall(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")
	fx.provider.delay = 20 * time.Millisecond

	const workers = 16
	results := make([]*entities.Translation, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), fx.provider.translateCalls.Load())
	assert.Equal(t, 1, fx.translations.count())
	for _, got := range results {
		require.NotNil(t, got)
		assert.Equal(t, results[0].ID, got.ID)
	}
}

func TestGetTranslation(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	_, err := fx.svc.GetTranslation(context.Background(), m.ID, "Spanish")
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_TRANSLATION_NOT_FOUND, appErr.Code)
	assert.Equal(t, "Translation not found", appErr.Message)

	produced, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)

	got, err := fx.svc.GetTranslation(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, produced.ID, got.ID)
	assert.Equal(t, int64(1), fx.provider.translateCalls.Load(), "reads never trigger translation")
}

func TestGetTranslation_StoreErrorDegradesToNotFound(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	_, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)

	fx.translations.findErr = errors.New("connection refused")

	_, err = fx.svc.GetTranslation(context.Background(), m.ID, "Spanish")
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_TRANSLATION_NOT_FOUND, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPCode, "a read outage reports absent, not a server error")
}

func TestExport_RequiresCachedTranslation(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	_, err := fx.svc.Export(context.Background(), m.ID, "Spanish")
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Translation not found", appErr.Message)
	assert.Equal(t, int64(0), fx.provider.translateCalls.Load())
}

func TestExport_StoreErrorDegradesToNotFound(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	_, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)

	fx.translations.findErr = errors.New("connection refused")

	_, err = fx.svc.Export(context.Background(), m.ID, "Spanish")
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_TRANSLATION_NOT_FOUND, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestExport_RendersDocument(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "Hello, this is a test message for translation.")

	_, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)

	doc, err := fx.svc.Export(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "# Meeting Summary\n"))
	assert.Contains(t, doc, "**Weekly sync**")
	assert.Contains(t, doc, "Translated from en to Spanish")
	assert.Contains(t, doc, "## Overview")
	assert.Contains(t, doc, "## Action Items")
	assert.Contains(t, doc, "## Original Content")
	assert.Contains(t, doc, "## Translated Content")
	assert.Contains(t, doc, "Hello, this is a test message for translation.")
	assert.Contains(t, doc, "[Spanish] Hello, this is a test message for translation.")
}

func TestCreateFromImage_Success(t *testing.T) {
	fx := newFixture()
	userID := uuid.New()
	fx.extractor.output = "```json\n{\"text\":\"Action: review the draft\",\"language\":\"en\"}\n```"

	m, err := fx.svc.CreateFromImage(context.Background(), CreateFromImageInput{
		UserID:       userID,
		Title:        "Whiteboard photo",
		Data:         []byte("fake image bytes"),
		MimeType:     "image/png",
		DeclaredSize: 16,
	})
	require.NoError(t, err)

	assert.Equal(t, "Action: review the draft", m.OriginalContent)
	require.NotNil(t, m.DetectedLanguage)
	assert.Equal(t, "en", *m.DetectedLanguage)
	assert.True(t, m.SourcedFromImage())

	assert.Equal(t, int64(1), fx.blobs.calls.Load())
	assert.Equal(t, "image/png", fx.blobs.lastMime)
	assert.True(t, strings.HasPrefix(fx.blobs.lastKey, "meetings/"+userID.String()+"/"))
	assert.True(t, strings.HasSuffix(fx.blobs.lastKey, ".png"))
}

func TestCreateFromImage_SizeBoundary(t *testing.T) {
	fx := newFixture()

	data := make([]byte, MaxImageBytes)
	m, err := fx.svc.CreateFromImage(context.Background(), CreateFromImageInput{
		UserID:       uuid.New(),
		Title:        "Exactly at the cap",
		Data:         data,
		MimeType:     "image/jpeg",
		DeclaredSize: MaxImageBytes,
	})
	require.NoError(t, err, "an image of exactly the maximum size is accepted")
	assert.NotZero(t, m.ID)

	_, err = fx.svc.CreateFromImage(context.Background(), CreateFromImageInput{
		UserID:       uuid.New(),
		Title:        "One byte over",
		Data:         []byte("x"),
		MimeType:     "image/jpeg",
		DeclaredSize: MaxImageBytes + 1,
	})
	assert.Equal(t, apperrors.ErrorCode_IMAGE_TOO_LARGE, appErrorCode(t, err))
	assert.Equal(t, int64(1), fx.blobs.calls.Load(), "oversized upload must be rejected before storage")
	assert.Equal(t, int64(1), fx.extractor.calls.Load(), "oversized upload must be rejected before OCR")
}

func TestCreateFromImage_ActualSizeOverrulesDeclared(t *testing.T) {
	fx := newFixture()

	data := make([]byte, MaxImageBytes+1)
	_, err := fx.svc.CreateFromImage(context.Background(), CreateFromImageInput{
		UserID:       uuid.New(),
		Title:        "Lied about the size",
		Data:         data,
		MimeType:     "image/jpeg",
		DeclaredSize: 100,
	})
	assert.Equal(t, apperrors.ErrorCode_IMAGE_TOO_LARGE, appErrorCode(t, err))
	assert.Equal(t, int64(0), fx.blobs.calls.Load())
}

func TestCreateFromImage_UnsupportedType(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.CreateFromImage(context.Background(), CreateFromImageInput{
		UserID:       uuid.New(),
		Title:        "A PDF is not an image",
		Data:         []byte("%PDF-1.4"),
		MimeType:     "application/pdf",
		DeclaredSize: 8,
	})
	assert.Equal(t, apperrors.ErrorCode_UNSUPPORTED_IMAGE_TYPE, appErrorCode(t, err))
	assert.Equal(t, int64(0), fx.blobs.calls.Load())
	assert.Equal(t, int64(0), fx.extractor.calls.Load())
}

func TestCreateFromImage_EmptyOCRPersistsNothing(t *testing.T) {
	fx := newFixture()
	fx.extractor.output = `{"text":"   ","language":"en"}`

	_, err := fx.svc.CreateFromImage(context.Background(), CreateFromImageInput{
		UserID:       uuid.New(),
		Title:        "Blank page",
		Data:         []byte("bytes"),
		MimeType:     "image/jpeg",
		DeclaredSize: 5,
	})
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_NO_TEXT_EXTRACTED, appErr.Code)
	assert.Equal(t, 422, appErr.HTTPCode)
	assert.Empty(t, fx.meetings.rows, "no meeting row for an unreadable image")
}

func TestList_ReadFailureDegradesToEmpty(t *testing.T) {
	fx := newFixture()
	fx.meetings.listErr = errors.New("replica down")

	got, err := fx.svc.List(context.Background(), uuid.New(), repositories.MeetingFilters{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestDelete_RemovesMeetingAndTranslations(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	_, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)
	_, err = fx.svc.Translate(context.Background(), m.ID, "French")
	require.NoError(t, err)
	require.Equal(t, 2, fx.translations.count())

	require.NoError(t, fx.svc.Delete(context.Background(), m.ID))

	_, err = fx.svc.Get(context.Background(), m.ID)
	assert.Equal(t, apperrors.ErrorCode_MEETING_NOT_FOUND, appErrorCode(t, err))
	assert.Equal(t, 0, fx.translations.count())

	assert.Equal(t, apperrors.ErrorCode_MEETING_NOT_FOUND,
		appErrorCode(t, fx.svc.Delete(context.Background(), m.ID)))
}

func TestDelete_RemovesImageBlob(t *testing.T) {
	fx := newFixture()

	m, err := fx.svc.CreateFromImage(context.Background(), CreateFromImageInput{
		UserID:       uuid.New(),
		Title:        "Whiteboard photo",
		Data:         []byte("fake image bytes"),
		MimeType:     "image/png",
		DeclaredSize: 16,
	})
	require.NoError(t, err)
	require.NotNil(t, m.ImageKey)

	require.NoError(t, fx.svc.Delete(context.Background(), m.ID))
	assert.Equal(t, []string{*m.ImageKey}, fx.blobs.deletedKeys)
}

func TestDelete_BlobRemovalFailureIsNotFatal(t *testing.T) {
	fx := newFixture()

	m, err := fx.svc.CreateFromImage(context.Background(), CreateFromImageInput{
		UserID:       uuid.New(),
		Title:        "Whiteboard photo",
		Data:         []byte("fake image bytes"),
		MimeType:     "image/png",
		DeclaredSize: 16,
	})
	require.NoError(t, err)
	fx.blobs.deleteErr = errors.New("storage unavailable")

	require.NoError(t, fx.svc.Delete(context.Background(), m.ID))

	_, err = fx.svc.Get(context.Background(), m.ID)
	assert.Equal(t, apperrors.ErrorCode_MEETING_NOT_FOUND, appErrorCode(t, err))
}

func TestDelete_TextMeetingTouchesNoBlob(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	require.NoError(t, fx.svc.Delete(context.Background(), m.ID))
	assert.Empty(t, fx.blobs.deletedKeys)
}

func TestDelete_RowVanishesBeforeDelete(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	// A competing deleter removes the row after the existence check.
	fx.meetings.onDelete = func() {
		delete(fx.meetings.rows, m.ID)
	}

	err := fx.svc.Delete(context.Background(), m.ID)
	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorCode_MEETING_NOT_FOUND, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestTranslate_StoredSummaryRoundTrips(t *testing.T) {
	fx := newFixture()
	m := fx.createMeeting(t, "content")

	got, err := fx.svc.Translate(context.Background(), m.ID, "Spanish")
	require.NoError(t, err)

	var stored entities.StructuredSummary
	require.NoError(t, json.Unmarshal(got.Summary, &stored))
	assert.Equal(t, "Team sync recap", stored.Summary)
	assert.Equal(t, []string{"Deadline moved"}, stored.KeyPoints)
}
