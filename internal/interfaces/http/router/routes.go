package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tienda/backend/internal/interfaces/http/handler"
)

// APIHandlers are the handlers mounted under the base path
type APIHandlers struct {
	Products   *handler.ProductHandler
	Categories *handler.CategoryHandler
	Clients    *handler.ClientHandler
	Orders     *handler.OrderHandler
	Schema     *handler.SchemaHandler
}

// resourceHandler is the list/create pair every resource exposes
type resourceHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
}

// Registrars returns one group per resource plus the schema routes:
//
//	GET/POST /productos, /clientes, /ordenes, /categorias
//	GET      /check-tables
//	GET      /check-columns/:table
func (h APIHandlers) Registrars() []RouteRegistrar {
	resources := []struct {
		name    string
		handler resourceHandler
	}{
		{"productos", h.Products},
		{"clientes", h.Clients},
		{"ordenes", h.Orders},
		{"categorias", h.Categories},
	}

	registrars := make([]RouteRegistrar, 0, len(resources)+1)
	for _, r := range resources {
		registrars = append(registrars, NewDomainGroup(r.name, "/"+r.name).
			GET("", r.handler.List).
			POST("", r.handler.Create))
	}

	registrars = append(registrars, NewDomainGroup("schema", "").
		GET("/check-tables", h.Schema.ListTables).
		GET("/check-columns/:table", h.Schema.ListColumns))

	return registrars
}

// RegisterSystemRoutes mounts the liveness message and the health probe
// outside the API prefix.
func RegisterSystemRoutes(engine *gin.Engine, system *handler.SystemHandler) {
	engine.GET("/", system.Root)
	engine.GET("/health", system.Health)
}
