package errors

// ErrorCode identifies an error category in API responses and logs.
type ErrorCode string

const (
	ErrorCode_OK ErrorCode = "OK"

	ErrorCode_INTERNAL          ErrorCode = "INTERNAL"
	ErrorCode_INVALID_ARGUMENT  ErrorCode = "INVALID_ARGUMENT"
	ErrorCode_INVALID_PAYLOAD   ErrorCode = "INVALID_PAYLOAD"
	ErrorCode_NOT_FOUND         ErrorCode = "NOT_FOUND"
	ErrorCode_ALREADY_EXISTS    ErrorCode = "ALREADY_EXISTS"
	ErrorCode_PERMISSION_DENIED ErrorCode = "PERMISSION_DENIED"
	ErrorCode_FORBIDDEN         ErrorCode = "FORBIDDEN"
	ErrorCode_UNAUTHENTICATED   ErrorCode = "UNAUTHENTICATED"

	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = "AUTH_INVALID_TOKEN"
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = "AUTH_TOKEN_EXPIRED"
	ErrorCode_AUTH_OAUTH_FAILED  ErrorCode = "AUTH_OAUTH_FAILED"

	ErrorCode_MEETING_NOT_FOUND       ErrorCode = "MEETING_NOT_FOUND"
	ErrorCode_TRANSLATION_NOT_FOUND   ErrorCode = "TRANSLATION_NOT_FOUND"
	ErrorCode_IMAGE_TOO_LARGE         ErrorCode = "IMAGE_TOO_LARGE"
	ErrorCode_UNSUPPORTED_IMAGE_TYPE  ErrorCode = "UNSUPPORTED_IMAGE_TYPE"
	ErrorCode_NO_TEXT_EXTRACTED       ErrorCode = "NO_TEXT_EXTRACTED"
	ErrorCode_AI_TRANSLATION_FAILED   ErrorCode = "AI_TRANSLATION_FAILED"
	ErrorCode_AI_DETECTION_FAILED     ErrorCode = "AI_DETECTION_FAILED"
	ErrorCode_AI_OCR_FAILED           ErrorCode = "AI_OCR_FAILED"
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = "AI_SERVICE_UNAVAILABLE"
	ErrorCode_AI_QUOTA_EXCEEDED       ErrorCode = "AI_QUOTA_EXCEEDED"

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = "INTEGRATION_STORAGE_FAILED"
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = "INTEGRATION_CACHE_FAILED"

	ErrorCode_DB_CONNECTION_FAILED  ErrorCode = "DB_CONNECTION_FAILED"
	ErrorCode_DB_QUERY_FAILED       ErrorCode = "DB_QUERY_FAILED"
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = "DB_TRANSACTION_FAILED"
)

func (c ErrorCode) String() string {
	return string(c)
}
