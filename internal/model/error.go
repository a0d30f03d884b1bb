package model

// Standard error codes reported by the extraction pipeline
const (
	ErrCodeReadFailed        = "READ_FAILED"
	ErrCodeEncodeFailed      = "ENCODE_FAILED"
	ErrCodeInvalidMeatStatus = "INVALID_MEAT_STATUS"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// Domain errors for the extraction pipeline
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrReadFailed        = NewDomainError(ErrCodeReadFailed, "Failed to read item field")
	ErrEncodeFailed      = NewDomainError(ErrCodeEncodeFailed, "Failed to encode grocery items")
	ErrInvalidMeatStatus = NewDomainError(ErrCodeInvalidMeatStatus, "Meat status must be one of Veg, Fish or Meat")
	ErrUnsupportedFormat = NewDomainError(ErrCodeUnsupportedFormat, "Output format must be json or yaml")
)
