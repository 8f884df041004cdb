package errors

// ErrorCode is the application error code carried in API error bodies
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED      ErrorCode = 0
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	ErrorCode_PARTICIPANT_NOT_FOUND ErrorCode = 2000
	ErrorCode_INVALID_IMAGE_FIELD   ErrorCode = 2001

	ErrorCode_UPLOAD_MISSING_FILE ErrorCode = 3000
	ErrorCode_UPLOAD_TOO_LARGE    ErrorCode = 3001
	ErrorCode_UPLOAD_NOT_IMAGE    ErrorCode = 3002

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                "UNSPECIFIED",
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_PARTICIPANT_NOT_FOUND:      "PARTICIPANT_NOT_FOUND",
	ErrorCode_INVALID_IMAGE_FIELD:        "INVALID_IMAGE_FIELD",
	ErrorCode_UPLOAD_MISSING_FILE:        "UPLOAD_MISSING_FILE",
	ErrorCode_UPLOAD_TOO_LARGE:           "UPLOAD_TOO_LARGE",
	ErrorCode_UPLOAD_NOT_IMAGE:           "UPLOAD_NOT_IMAGE",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
