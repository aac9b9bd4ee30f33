package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tienda/backend/internal/domain/shared"
	"github.com/tienda/backend/internal/interfaces/http/dto"
)

var (
	errEmptyBody     = errors.New("El cuerpo de la solicitud está vacío")
	errNotAnObject   = errors.New("El cuerpo de la solicitud debe ser un objeto JSON")
	errTrailingData  = errors.New("El cuerpo de la solicitud contiene datos adicionales")
	errMalformedJSON = errors.New("El cuerpo de la solicitud no es JSON válido")
)

// decodePayload reads the request body as a single JSON object.
// Numbers are kept as json.Number so integer and decimal fields keep
// their exact textual value.
func decodePayload(r io.Reader) (shared.Payload, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, errMalformedJSON
	}
	if dec.More() {
		return nil, errTrailingData
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, errNotAnObject
	}
	return shared.Payload(obj), nil
}

// bindPayload decodes the body and answers the request itself when the
// body is unusable. It returns false when the handler must stop.
func (h *BaseHandler) bindPayload(c *gin.Context) (shared.Payload, bool) {
	payload, err := decodePayload(c.Request.Body)
	if err == nil {
		return payload, true
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge,
			"El cuerpo de la solicitud excede el tamaño permitido")
		return nil, false
	}

	h.InvalidJSON(c, err.Error())
	return nil, false
}
