package router

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	catalogapp "github.com/tienda/backend/internal/application/catalog"
	partnerapp "github.com/tienda/backend/internal/application/partner"
	schemaapp "github.com/tienda/backend/internal/application/schema"
	tradeapp "github.com/tienda/backend/internal/application/trade"
	"github.com/tienda/backend/internal/infrastructure/persistence"
	"github.com/tienda/backend/internal/interfaces/http/handler"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "/api", r.BasePath())
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithBasePath("/tienda"))
	assert.Equal(t, "/tienda", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test").
		GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") }).
		POST("/ping", func(c *gin.Context) { c.String(http.StatusCreated, "created") })
	r.Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/test/ping", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("productos", "/productos")
		assert.Equal(t, "productos", g.Name())
		assert.Equal(t, "/productos", g.Prefix())
	})

	t.Run("group middleware runs before routes", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test").
			Use(func(c *gin.Context) {
				c.Header("X-Group", "yes")
				c.Next()
			}).
			GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.RegisterRoutes(engine.Group("/api"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "yes", w.Header().Get("X-Group"))
	})
}

func newAPIHandlers(t *testing.T) (APIHandlers, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB, DriverName: "postgres"}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	clientRepo := persistence.NewGormClientRepository(db)
	return APIHandlers{
		Products:   handler.NewProductHandler(catalogapp.NewProductService(persistence.NewGormProductRepository(db))),
		Categories: handler.NewCategoryHandler(catalogapp.NewCategoryService(persistence.NewGormCategoryRepository(db))),
		Clients:    handler.NewClientHandler(partnerapp.NewClientService(clientRepo)),
		Orders:     handler.NewOrderHandler(tradeapp.NewOrderService(persistence.NewGormOrderRepository(db), clientRepo)),
		Schema:     handler.NewSchemaHandler(schemaapp.NewSchemaService(persistence.NewGormSchemaReader(db), nil)),
	}, mock
}

func TestAPIHandlers_Registrars(t *testing.T) {
	handlers, mock := newAPIHandlers(t)

	engine := gin.New()
	NewRouter(engine).Register(handlers.Registrars()...).Setup()
	RegisterSystemRoutes(engine, handler.NewSystemHandler(nil))

	var routes []string
	for _, info := range engine.Routes() {
		routes = append(routes, info.Method+" "+info.Path)
	}
	sort.Strings(routes)

	assert.Equal(t, []string{
		"GET /",
		"GET /api/categorias",
		"GET /api/check-columns/:table",
		"GET /api/check-tables",
		"GET /api/clientes",
		"GET /api/ordenes",
		"GET /api/productos",
		"GET /health",
		"POST /api/categorias",
		"POST /api/clientes",
		"POST /api/ordenes",
		"POST /api/productos",
	}, routes)

	t.Run("mounted handler reaches the store", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM categorias ORDER BY id_categoria`).
			WillReturnRows(sqlmock.NewRows([]string{"id_categoria", "nombre", "descripcion"}).
				AddRow(1, "Electrónica", nil))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categorias", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id_categoria":1,"nombre":"Electrónica","descripcion":null}]`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
