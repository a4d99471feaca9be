package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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

// Error codes for the booking lifecycle and billing rules
const (
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeOverpaymentRejected = "OVERPAYMENT_REJECTED"
	CodeNoOpRoomChange      = "NO_OP_ROOM_CHANGE"
	CodePermissionDenied    = "PERMISSION_DENIED"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError(CodeValidationError, "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrPermissionDenied    = NewDomainError(CodePermissionDenied, "Caller lacks the required permission")
)
