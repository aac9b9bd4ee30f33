package dto

import (
	"net/http"

	"github.com/tienda/backend/internal/domain/shared"
)

// Error code constants
// Format: ERR_<DESCRIPTION>

// General error codes
const (
	// ErrCodeInternal is used for store failures and unexpected errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeUnavailable is used when a dependency cannot be reached
	ErrCodeUnavailable = "ERR_UNAVAILABLE"
)

// Validation error codes, one per shared.ValidationKind
const (
	// ErrCodeMissingField is used when a required field is absent or empty
	ErrCodeMissingField = "ERR_MISSING_FIELD"
	// ErrCodeInvalidType is used when a field cannot be coerced to its type
	ErrCodeInvalidType = "ERR_INVALID_TYPE"
	// ErrCodeInvalidValue is used when a well-typed value breaks a constraint
	ErrCodeInvalidValue = "ERR_INVALID_VALUE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a table or referenced row does not exist
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeForbidden is used when the caller's address is not whitelisted
	ErrCodeForbidden = "ERR_FORBIDDEN"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed query or path parameters
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidJSON is used when the body is not a JSON object
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeInvalidIdentifier is used when a table name fails the identifier syntax
	ErrCodeInvalidIdentifier = "ERR_INVALID_IDENTIFIER"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeUnavailable: http.StatusServiceUnavailable,

	// Validation errors -> 400 Bad Request
	ErrCodeMissingField: http.StatusBadRequest,
	ErrCodeInvalidType:  http.StatusBadRequest,
	ErrCodeInvalidValue: http.StatusBadRequest,

	ErrCodeNotFound:  http.StatusNotFound,
	ErrCodeForbidden: http.StatusForbidden,

	ErrCodeBadRequest:        http.StatusBadRequest,
	ErrCodeInvalidJSON:       http.StatusBadRequest,
	ErrCodeInvalidIdentifier: http.StatusBadRequest,
	ErrCodeRequestTooLarge:   http.StatusRequestEntityTooLarge,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ValidationKindCode maps validation kinds to their wire error codes
var ValidationKindCode = map[shared.ValidationKind]string{
	shared.KindMissingField: ErrCodeMissingField,
	shared.KindInvalidType:  ErrCodeInvalidType,
	shared.KindInvalidValue: ErrCodeInvalidValue,
	shared.KindNotFound:     ErrCodeNotFound,
}

// CodeForValidationKind returns the error code for a validation kind,
// falling back to ERR_INVALID_VALUE for unknown kinds
func CodeForValidationKind(kind shared.ValidationKind) string {
	if code, ok := ValidationKindCode[kind]; ok {
		return code
	}
	return ErrCodeInvalidValue
}

// DomainErrorCodeMapping maps domain error codes to wire error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":          ErrCodeNotFound,
	"INVALID_INPUT":      ErrCodeBadRequest,
	"INVALID_IDENTIFIER": ErrCodeInvalidIdentifier,
}

// NormalizeErrorCode converts a domain error code to the wire format
// If the code is already in the wire format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
