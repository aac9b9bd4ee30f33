package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	catalogapp "github.com/tienda/backend/internal/application/catalog"
	partnerapp "github.com/tienda/backend/internal/application/partner"
	schemaapp "github.com/tienda/backend/internal/application/schema"
	tradeapp "github.com/tienda/backend/internal/application/trade"
	"github.com/tienda/backend/internal/infrastructure/persistence"
	"github.com/tienda/backend/internal/infrastructure/telemetry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testAPI wires the real services and repositories over a mocked connection
type testAPI struct {
	engine *gin.Engine
	mock   sqlmock.Sqlmock
}

func newTestAPI(t *testing.T, metrics *telemetry.WriteMetrics) *testAPI {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	clientRepo := persistence.NewGormClientRepository(db)

	products := NewProductHandler(catalogapp.NewProductService(persistence.NewGormProductRepository(db)))
	categories := NewCategoryHandler(catalogapp.NewCategoryService(persistence.NewGormCategoryRepository(db)))
	clients := NewClientHandler(partnerapp.NewClientService(clientRepo))
	orders := NewOrderHandler(tradeapp.NewOrderService(persistence.NewGormOrderRepository(db), clientRepo))
	schemas := NewSchemaHandler(schemaapp.NewSchemaService(persistence.NewGormSchemaReader(db), nil))

	for _, h := range []*BaseHandler{&products.BaseHandler, &categories.BaseHandler, &clients.BaseHandler, &orders.BaseHandler} {
		h.SetWriteMetrics(metrics)
	}

	engine := gin.New()
	api := engine.Group("/api")
	api.GET("/productos", products.List)
	api.POST("/productos", products.Create)
	api.GET("/categorias", categories.List)
	api.POST("/categorias", categories.Create)
	api.GET("/clientes", clients.List)
	api.POST("/clientes", clients.Create)
	api.GET("/ordenes", orders.List)
	api.POST("/ordenes", orders.Create)
	api.GET("/check-tables", schemas.ListTables)
	api.GET("/check-columns/:table", schemas.ListColumns)

	return &testAPI{engine: engine, mock: mock}
}

func (a *testAPI) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

// requireClientError asserts a 4xx body and that no statement reached the store
func requireClientError(t *testing.T, api *testAPI, w *httptest.ResponseRecorder, status int, code, field string) map[string]any {
	require.Equal(t, status, w.Code, w.Body.String())
	body := decodeObject(t, w)
	require.Equal(t, code, body["code"])
	if field != "" {
		require.Equal(t, field, body["field"])
	}
	require.NoError(t, api.mock.ExpectationsWereMet())
	return body
}
