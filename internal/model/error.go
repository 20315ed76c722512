package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message so
// the handler boundary can map error kinds to HTTP statuses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
)
