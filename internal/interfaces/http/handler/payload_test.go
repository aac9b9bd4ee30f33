package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	t.Run("keeps numbers exact", func(t *testing.T) {
		payload, err := decodePayload(strings.NewReader(`{"precio":0.1,"stock":9007199254740993}`))

		require.NoError(t, err)
		assert.Equal(t, json.Number("0.1"), payload["precio"])
		assert.Equal(t, json.Number("9007199254740993"), payload["stock"])
	})

	t.Run("rejects non objects", func(t *testing.T) {
		_, err := decodePayload(strings.NewReader(`[1,2]`))
		assert.Equal(t, errNotAnObject, err)

		_, err = decodePayload(strings.NewReader(`null`))
		assert.Equal(t, errNotAnObject, err)

		_, err = decodePayload(strings.NewReader("  \n"))
		assert.Equal(t, errEmptyBody, err)
	})
}

func TestBindPayload_BodyTooLarge(t *testing.T) {
	engine := gin.New()
	h := &BaseHandler{}
	engine.POST("/", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 8)
		if _, ok := h.bindPayload(c); ok {
			c.Status(http.StatusNoContent)
		}
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nombre":"demasiado largo"}`)))

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "ERR_REQUEST_TOO_LARGE", decodeObject(t, w)["code"])
}
