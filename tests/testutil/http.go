// Package testutil provides HTTP helpers shared by the API tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestCase is one request against a handler tree and the status it
// should produce.
type HTTPTestCase struct {
	Name           string
	Method         string
	Path           string
	Body           string
	Headers        map[string]string
	ExpectedStatus int
	ExpectedCode   string // error code, checked when non-empty
	ExpectedField  string // offending field, checked when non-empty
	Validate       func(t *testing.T, w *httptest.ResponseRecorder)
}

// RunHTTPTestCases runs each case as a subtest against h.
func RunHTTPTestCases(t *testing.T, h http.Handler, cases []HTTPTestCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			RunHTTPTestCase(t, h, tc)
		})
	}
}

// RunHTTPTestCase serves a single case and checks its expectations.
func RunHTTPTestCase(t *testing.T, h http.Handler, tc HTTPTestCase) {
	t.Helper()

	method := tc.Method
	if method == "" {
		method = http.MethodGet
	}
	path := tc.Path
	if path == "" {
		path = "/"
	}

	w := Do(h, method, path, tc.Body, tc.Headers)

	if tc.ExpectedStatus != 0 {
		require.Equal(t, tc.ExpectedStatus, w.Code, "Unexpected status, body: %s", w.Body.String())
	}
	if tc.ExpectedCode != "" {
		resp := AssertErrorResponse(t, w, tc.ExpectedCode)
		if tc.ExpectedField != "" {
			assert.Equal(t, tc.ExpectedField, resp["field"], "Unexpected error field")
		}
	}
	if tc.Validate != nil {
		tc.Validate(t, w)
	}
}

// Do serves one request. A non-empty body is sent as JSON.
func Do(h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// JSONObject parses the response body as a JSON object.
func JSONObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	return JSONResponseAs[map[string]any](t, w)
}

// JSONArray parses the response body as an array of JSON objects.
func JSONArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	return JSONResponseAs[[]map[string]any](t, w)
}

// JSONResponseAs parses the response body into T.
func JSONResponseAs[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var result T
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err, "Failed to parse JSON response: %s", w.Body.String())
	return result
}

// AssertErrorResponse asserts the body is an error response carrying
// expectedCode and a non-empty message, and returns the decoded body.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) map[string]any {
	t.Helper()

	resp := JSONObject(t, w)
	assert.Equal(t, expectedCode, resp["code"], "Unexpected error code")
	assert.NotEmpty(t, resp["error"], "Expected an error message")
	return resp
}
