package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tienda/backend/internal/interfaces/http/dto"
)

const msgRequestTooLarge = "El cuerpo de la solicitud excede el tamaño permitido"

// BodyLimit returns a middleware that limits request body size.
// Declared lengths are rejected up front; streamed bodies fail on read
// with *http.MaxBytesError, which the handlers map to the same code.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRequestTooLarge, msgRequestTooLarge, c.GetString(RequestIDKey)))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
