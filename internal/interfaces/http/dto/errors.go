package dto

import "net/http"

// Error codes used at the HTTP boundary. Domain error codes pass through
// unchanged so clients can branch on the same identifiers the ledger and
// state machine raise internally.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// State-machine and billing violations are well-formed requests the
// domain refuses, hence 422 rather than 400.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,

	"VALIDATION_ERROR": http.StatusBadRequest,
	"NOT_FOUND":        http.StatusNotFound,

	"PERMISSION_DENIED": http.StatusForbidden,

	"INVALID_TRANSITION":   http.StatusUnprocessableEntity,
	"OVERPAYMENT_REJECTED": http.StatusUnprocessableEntity,
	"NO_OP_ROOM_CHANGE":    http.StatusUnprocessableEntity,

	"CONCURRENCY_CONFLICT": http.StatusConflict,

	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,
	"USER_NOT_FOUND":      http.StatusNotFound,

	"TOKEN_EXPIRED":     http.StatusUnauthorized,
	"TOKEN_INVALID":     http.StatusUnauthorized,
	"TOKEN_REVOKED":     http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH": http.StatusUnauthorized,
	"TOKEN_ERROR":       http.StatusUnauthorized,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
