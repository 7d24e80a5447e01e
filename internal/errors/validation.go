package errors

// ValidationError carries a field-specific message for malformed input.
// Unlike authentication failures, validation messages name what was wrong.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
