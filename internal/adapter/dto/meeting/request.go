package meeting

// CreateMeetingRequest represents the request to create a meeting from typed text
type CreateMeetingRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=500"`
	Content string `json:"content" validate:"required,min=1"`
}

// CreateMeetingFromImageRequest represents the request to create a meeting
// from a photographed page. ImageData is base64-encoded; FileSize is the
// declared size of the decoded bytes.
type CreateMeetingFromImageRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=500"`
	ImageData string `json:"image_data" validate:"required"`
	MimeType  string `json:"mime_type" validate:"required,imagemime"`
	FileSize  int64  `json:"file_size" validate:"required,min=1"`
}

// TranslateMeetingRequest represents the request to translate a meeting
type TranslateMeetingRequest struct {
	TargetLanguage string `json:"target_language" validate:"required,min=1,max=64"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}
