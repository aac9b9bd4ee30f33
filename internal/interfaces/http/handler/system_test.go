package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping() error { return p.err }

func TestSystemHandler(t *testing.T) {
	serve := func(h *SystemHandler, path string) *httptest.ResponseRecorder {
		engine := gin.New()
		engine.GET("/", h.Root)
		engine.GET("/health", h.Health)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("root", func(t *testing.T) {
		w := serve(NewSystemHandler(fakePinger{}), "/")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"mensaje":"`+RootMessage+`"}`, w.Body.String())
	})

	t.Run("healthy", func(t *testing.T) {
		w := serve(NewSystemHandler(fakePinger{}), "/health")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeObject(t, w)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "ok", body["database"])
	})

	t.Run("store unreachable", func(t *testing.T) {
		w := serve(NewSystemHandler(fakePinger{err: errors.New("dial tcp: connection refused")}), "/health")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "error", decodeObject(t, w)["database"])
	})
}
