package app

// RequestErrorCode classifies a rejected request.
type RequestErrorCode string

const (
	ErrInvalidDate      RequestErrorCode = "INVALID_DATE"
	ErrInvalidMonth     RequestErrorCode = "INVALID_MONTH"
	ErrInvalidDirection RequestErrorCode = "INVALID_DIRECTION"
	ErrMissingSlots     RequestErrorCode = "MISSING_SLOTS"
	ErrMissingStartTime RequestErrorCode = "MISSING_START_TIME"
	ErrEmptyImport      RequestErrorCode = "EMPTY_IMPORT"
)

// RequestError is returned for input the caller must correct.
type RequestError struct {
	Code    RequestErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}
