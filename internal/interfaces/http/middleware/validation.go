package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/tienda/backend/internal/interfaces/http/dto"
)

const msgInvalidParameters = "Parámetros de la solicitud inválidos"

// SetupValidator makes binding errors report the wire name of a field
// (json, then uri, then form tag) instead of the Go field name.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "uri", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return ""
		})
	}
}

// FormatValidationErrors converts a binding error into the API error body.
// Only the first failing field is reported.
func FormatValidationErrors(err error, requestID string) dto.ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return dto.NewFieldErrorResponse(dto.ErrCodeBadRequest, getValidationMessage(e), e.Field(), e.Tag(), requestID)
	}
	return dto.NewErrorResponseWithRequestID(dto.ErrCodeBadRequest, msgInvalidParameters, requestID)
}

// HandleValidationError writes a 400 response for a binding error
func HandleValidationError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, requestIDFromContext(c)))
}

func requestIDFromContext(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(RequestIDHeader)
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "El campo " + e.Field() + " es obligatorio"
	case "max":
		return "El campo " + e.Field() + " admite como máximo " + e.Param() + " caracteres"
	case "oneof":
		return "El campo " + e.Field() + " debe ser uno de: " + e.Param()
	case "boolean":
		return "El campo " + e.Field() + " debe ser booleano"
	default:
		return "El campo " + e.Field() + " es inválido"
	}
}
