package shared

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// ValidationKind tags the reason a payload was rejected
type ValidationKind string

const (
	KindMissingField ValidationKind = "MISSING_FIELD"
	KindInvalidType  ValidationKind = "INVALID_TYPE"
	KindInvalidValue ValidationKind = "INVALID_VALUE"
	KindNotFound     ValidationKind = "NOT_FOUND"
)

// Constraint names used in validation failures
const (
	ConstraintRequired    = "required"
	ConstraintNumeric     = "numeric"
	ConstraintInteger     = "integer"
	ConstraintText        = "text"
	ConstraintNonNegative = "non-negative"
	ConstraintExists      = "exists"
)

// ValidationError is a client-side rejection of a write payload.
// Field is the wire name of the offending field.
type ValidationError struct {
	Kind       ValidationKind `json:"kind"`
	Field      string         `json:"field"`
	Constraint string         `json:"constraint"`
	Message    string         `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// MissingField reports a required field that is absent or empty
func MissingField(field string) *ValidationError {
	return &ValidationError{
		Kind:       KindMissingField,
		Field:      field,
		Constraint: ConstraintRequired,
		Message:    fmt.Sprintf("El campo '%s' es obligatorio", field),
	}
}

// InvalidType reports a field whose value cannot be coerced to the expected type
func InvalidType(field, expected string) *ValidationError {
	return &ValidationError{
		Kind:       KindInvalidType,
		Field:      field,
		Constraint: expected,
		Message:    fmt.Sprintf("El campo '%s' debe ser de tipo %s", field, expected),
	}
}

// InvalidValue reports a well-typed value that violates a domain constraint
func InvalidValue(field, constraint string) *ValidationError {
	return &ValidationError{
		Kind:       KindInvalidValue,
		Field:      field,
		Constraint: constraint,
		Message:    fmt.Sprintf("El campo '%s' no cumple la restricción %s", field, constraint),
	}
}

// NotFound reports a referenced entity that does not exist
func NotFound(entity string) *ValidationError {
	return &ValidationError{
		Kind:       KindNotFound,
		Field:      entity,
		Constraint: ConstraintExists,
		Message:    fmt.Sprintf("El %s especificado no existe", entity),
	}
}

// Payload is an untyped write request body keyed by wire field name
type Payload map[string]any

// isBlank reports whether v counts as "not supplied"
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// RequiredText returns the trimmed text value of field, or MissingField
// when the value is absent, not a string, or blank.
func (p Payload) RequiredText(field string) (string, error) {
	s, ok := p[field].(string)
	if !ok {
		return "", MissingField(field)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", MissingField(field)
	}
	return s, nil
}

// OptionalText returns nil when field is absent or blank; scalar values are
// coerced to trimmed text. Objects and arrays fail with InvalidType.
func (p Payload) OptionalText(field string) (*string, error) {
	v, present := p[field]
	if !present || isBlank(v) {
		return nil, nil
	}
	switch v.(type) {
	case map[string]any, []any:
		return nil, InvalidType(field, ConstraintText)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, InvalidType(field, ConstraintText)
	}
	s = strings.TrimSpace(s)
	return &s, nil
}

// RequiredDecimal parses field as a decimal number
func (p Payload) RequiredDecimal(field string) (decimal.Decimal, error) {
	v, present := p[field]
	if !present || isBlank(v) {
		return decimal.Zero, MissingField(field)
	}
	d, ok := toDecimal(v)
	if !ok {
		return decimal.Zero, InvalidType(field, ConstraintNumeric)
	}
	return d, nil
}

// RequiredInteger parses field as a whole number
func (p Payload) RequiredInteger(field string) (int64, error) {
	v, present := p[field]
	if !present || isBlank(v) {
		return 0, MissingField(field)
	}
	n, ok := toInteger(v)
	if !ok {
		return 0, InvalidType(field, ConstraintInteger)
	}
	return n, nil
}

// OptionalInteger returns nil when field is absent or blank, otherwise
// parses it as a whole number.
func (p Payload) OptionalInteger(field string) (*int64, error) {
	v, present := p[field]
	if !present || isBlank(v) {
		return nil, nil
	}
	n, ok := toInteger(v)
	if !ok {
		return nil, InvalidType(field, ConstraintInteger)
	}
	return &n, nil
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		return d, err == nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case float32:
		return decimal.NewFromFloat32(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case int32:
		return decimal.NewFromInt32(x), true
	case decimal.Decimal:
		return x, true
	default:
		return decimal.Zero, false
	}
}

func toInteger(v any) (int64, bool) {
	switch x := v.(type) {
	case json.Number:
		n, err := strconv.ParseInt(x.String(), 10, 64)
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return n, err == nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.Abs(x) > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case int:
		return int64(x), true
	case int64:
		return x, true
	case int32:
		return int64(x), true
	default:
		return 0, false
	}
}
