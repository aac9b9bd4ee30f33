package handler

import (
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientColumns = []string{"id_cliente", "nombre", "email", "direccion", "telefono"}

func TestClientHandler_Create(t *testing.T) {
	t.Run("inserts a client with optional fields", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO clientes (nombre, email, direccion, telefono)")).
			WithArgs("Ana", "ana@example.com", nil, "5550101").
			WillReturnRows(sqlmock.NewRows(clientColumns).AddRow(3, "Ana", "ana@example.com", nil, "5550101"))

		w := api.do(http.MethodPost, "/api/clientes", `{"nombre":"Ana","email":" ana@example.com ","telefono":5550101}`)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decodeObject(t, w)
		assert.Equal(t, float64(3), body["id_cliente"])
		assert.Equal(t, "5550101", body["telefono"])
		assert.Nil(t, body["direccion"])
		assert.NoError(t, api.mock.ExpectationsWereMet())
	})

	t.Run("missing name", func(t *testing.T) {
		api := newTestAPI(t, nil)

		w := api.do(http.MethodPost, "/api/clientes", `{"email":"ana@example.com"}`)

		requireClientError(t, api, w, http.StatusBadRequest, "ERR_MISSING_FIELD", "nombre")
	})

	t.Run("structured address", func(t *testing.T) {
		api := newTestAPI(t, nil)

		w := api.do(http.MethodPost, "/api/clientes", `{"nombre":"Ana","direccion":{"calle":"Siempre Viva"}}`)

		body := requireClientError(t, api, w, http.StatusBadRequest, "ERR_INVALID_TYPE", "direccion")
		assert.Equal(t, "text", body["constraint"])
	})

	t.Run("duplicate email is a server error", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO clientes")).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "clientes_email_key"`))

		w := api.do(http.MethodPost, "/api/clientes", `{"nombre":"Otra Ana","email":"ana@example.com"}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeObject(t, w)
		assert.Equal(t, "ERR_INTERNAL", body["code"])
		assert.Contains(t, body["error"], "duplicate key value")
		assert.NoError(t, api.mock.ExpectationsWereMet())
	})
}

func TestClientHandler_List(t *testing.T) {
	api := newTestAPI(t, nil)
	api.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM clientes ORDER BY id_cliente")).
		WillReturnRows(sqlmock.NewRows(clientColumns).AddRow(1, "Ana", nil, nil, nil))

	w := api.do(http.MethodGet, "/api/clientes", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"id_cliente":1,"nombre":"Ana","email":null,"direccion":null,"telefono":null}]`,
		w.Body.String())
}
