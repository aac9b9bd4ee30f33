package shared

import "fmt"

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

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Recurso no encontrado")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Entrada inválida")
	ErrInvalidIdentifier = NewDomainError("INVALID_IDENTIFIER", "Identificador de tabla inválido")
)

// StoreError wraps a failure reported by the relational store.
// The underlying message is kept verbatim; failures are not classified.
type StoreError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying driver error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a store failure for the given operation.
// Returns nil when err is nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Describe returns a log-friendly description including the operation
func (e *StoreError) Describe() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}
