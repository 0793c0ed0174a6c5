package handler

import (
	"encoding/base64"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lingonote/lingonote/errors"
	meetingDTO "github.com/lingonote/lingonote/internal/adapter/dto/meeting"
	"github.com/lingonote/lingonote/internal/adapter/presenter"
	"github.com/lingonote/lingonote/internal/domain/repositories"
	meetingUsecase "github.com/lingonote/lingonote/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Create handles POST /meetings
// @Summary      Create a meeting from text
// @Description  Creates a meeting from typed notes and detects their language
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting content"
// @Success      200      {object}  common.SuccessEnvelope{data=meeting.CreateMeetingResponse}
// @Failure      400      {object}  common.ErrorEnvelope  "Validation failed"
// @Failure      401      {object}  common.ErrorEnvelope  "Not authenticated"
// @Router       /meetings [post]
func (h *Meeting) Create(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	m, err := h.meetingService.CreateFromText(c.Request().Context(), meetingUsecase.CreateFromTextInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &meetingDTO.CreateMeetingResponse{
		ID:               m.ID,
		DetectedLanguage: m.DetectedLanguage,
	})
}

// CreateFromImage handles POST /meetings/image
// @Summary      Create a meeting from an image
// @Description  Stores the image, extracts its text with OCR and creates a meeting from it
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.CreateMeetingFromImageRequest  true  "Base64 image payload"
// @Success      200      {object}  common.SuccessEnvelope{data=meeting.CreateMeetingFromImageResponse}
// @Failure      400      {object}  common.ErrorEnvelope  "Validation failed, image too large or unsupported type"
// @Failure      422      {object}  common.ErrorEnvelope  "No text could be extracted"
// @Failure      502      {object}  common.ErrorEnvelope  "OCR failed"
// @Router       /meetings/image [post]
func (h *Meeting) CreateFromImage(c echo.Context) error {
	var req meetingDTO.CreateMeetingFromImageRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	// Reject oversized uploads on the declared size before decoding.
	if req.FileSize > meetingUsecase.MaxImageBytes {
		return HandleError(h.logger, c, errors.ErrImageTooLarge(req.FileSize, meetingUsecase.MaxImageBytes))
	}

	data, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("image_data is not valid base64"))
	}

	m, err := h.meetingService.CreateFromImage(c.Request().Context(), meetingUsecase.CreateFromImageInput{
		UserID:       userID,
		Title:        req.Title,
		Data:         data,
		MimeType:     req.MimeType,
		DeclaredSize: req.FileSize,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	imageURL := ""
	if m.ImageURL != nil {
		imageURL = *m.ImageURL
	}

	return HandleSuccess(h.logger, c, &meetingDTO.CreateMeetingFromImageResponse{
		ID:               m.ID,
		DetectedLanguage: m.DetectedLanguage,
		ExtractedText:    m.OriginalContent,
		ImageURL:         imageURL,
	})
}

// Translate handles POST /meetings/:id/translate
// @Summary      Translate a meeting
// @Description  Returns the cached translation for the language pair, producing it on first request
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                                true  "Meeting ID"
// @Param        request  body      meeting.TranslateMeetingRequest    true  "Target language"
// @Success      200      {object}  common.SuccessEnvelope{data=meeting.TranslationResponse}
// @Failure      404      {object}  common.ErrorEnvelope  "Meeting not found"
// @Failure      502      {object}  common.ErrorEnvelope  "Translation failed"
// @Router       /meetings/{id}/translate [post]
func (h *Meeting) Translate(c echo.Context) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDTO.TranslateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	t, err := h.meetingService.Translate(c.Request().Context(), meetingID, req.TargetLanguage)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTranslationResponse(t))
}

// GetTranslation handles GET /meetings/:id/translations/:lang
// @Summary      Get a cached translation
// @Description  Returns the cached translation for the pair without triggering translation
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true  "Meeting ID"
// @Param        lang  path      string  true  "Target language"
// @Success      200   {object}  common.SuccessEnvelope{data=meeting.TranslationResponse}
// @Failure      404   {object}  common.ErrorEnvelope  "Translation not found"
// @Router       /meetings/{id}/translations/{lang} [get]
func (h *Meeting) GetTranslation(c echo.Context) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	t, err := h.meetingService.GetTranslation(c.Request().Context(), meetingID, c.Param("lang"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTranslationResponse(t))
}

// Export handles GET /meetings/:id/export/:lang
// @Summary      Export a translated meeting summary
// @Description  Renders the summary document for an already cached translation
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int     true  "Meeting ID"
// @Param        lang  path      string  true  "Target language"
// @Success      200   {object}  common.SuccessEnvelope{data=meeting.ExportResponse}
// @Failure      404   {object}  common.ErrorEnvelope  "Translation not found"
// @Router       /meetings/{id}/export/{lang} [get]
func (h *Meeting) Export(c echo.Context) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	content, err := h.meetingService.Export(c.Request().Context(), meetingID, c.Param("lang"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &meetingDTO.ExportResponse{Content: content})
}

// List handles GET /meetings
// @Summary      List meetings
// @Description  Returns the caller's meetings, newest first
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Maximum rows to return"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200     {object}  common.SuccessEnvelope{data=[]meeting.MeetingResponse}
// @Router       /meetings [get]
func (h *Meeting) List(c echo.Context) error {
	var req meetingDTO.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetings, err := h.meetingService.List(c.Request().Context(), userID, repositories.MeetingFilters{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// Get handles GET /meetings/:id
// @Summary      Get a meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessEnvelope{data=meeting.MeetingResponse}
// @Failure      404  {object}  common.ErrorEnvelope  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) Get(c echo.Context) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.Get(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Delete handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Description  Removes a meeting together with all its cached translations
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Meeting ID"
// @Success      200  {object}  common.SuccessEnvelope{data=meeting.DeleteMeetingResponse}
// @Failure      404  {object}  common.ErrorEnvelope  "Meeting not found"
// @Router       /meetings/{id} [delete]
func (h *Meeting) Delete(c echo.Context) error {
	meetingID, err := parseMeetingID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.Delete(c.Request().Context(), meetingID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &meetingDTO.DeleteMeetingResponse{Success: true})
}

// parseMeetingID reads the numeric meeting id path parameter
func parseMeetingID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidArgument("meeting id must be a positive integer")
	}
	return uint(id), nil
}
