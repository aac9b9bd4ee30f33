package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error      string `json:"error" example:"El campo 'nombre' es obligatorio"`
	Code       string `json:"code" example:"ERR_MISSING_FIELD"`
	Field      string `json:"field,omitempty" example:"nombre"`
	Constraint string `json:"constraint,omitempty" example:"required"`
	RequestID  string `json:"request_id,omitempty" example:"6f1c2d3e-4a5b-6c7d-8e9f-0a1b2c3d4e5f"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
		Code:  code,
	}
}

// NewErrorResponseWithRequestID creates an error response tagged with the request ID
func NewErrorResponseWithRequestID(code, message, requestID string) ErrorResponse {
	resp := NewErrorResponse(code, message)
	resp.RequestID = requestID
	return resp
}

// NewFieldErrorResponse creates an error response naming the offending field
func NewFieldErrorResponse(code, message, field, constraint, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:      message,
		Code:       code,
		Field:      field,
		Constraint: constraint,
		RequestID:  requestID,
	}
}

// StatusResponse is returned by the root liveness endpoint
type StatusResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Mensaje string `json:"mensaje" example:"API de tienda funcionando"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Time     string `json:"time" example:"2026-01-23T12:00:00Z"`
	Database string `json:"database" example:"ok"`
}

// TablesQuery holds the query parameters of the table listing
type TablesQuery struct {
	BaseOnly bool `form:"base_only"`
}

// ColumnsURI holds the path parameters of the column listing
type ColumnsURI struct {
	Table string `uri:"table" binding:"required"`
}
