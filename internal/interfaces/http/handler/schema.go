package handler

import (
	"github.com/gin-gonic/gin"
	schemaapp "github.com/tienda/backend/internal/application/schema"
	"github.com/tienda/backend/internal/interfaces/http/dto"
	"github.com/tienda/backend/internal/interfaces/http/middleware"
)

// SchemaHandler exposes read-only introspection of the store's tables
type SchemaHandler struct {
	BaseHandler
	schemaService *schemaapp.SchemaService
}

// NewSchemaHandler creates a new SchemaHandler
func NewSchemaHandler(schemaService *schemaapp.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
	}
}

// ListTables godoc
// @ID           checkTables
// @Summary      List tables
// @Description  Lists table names in the public schema. base_only restricts the list to base tables.
// @Tags         schema
// @Produce      json
// @Param        base_only query bool false "Only base tables"
// @Success      200 {array}  schema.Table
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /check-tables [get]
func (h *SchemaHandler) ListTables(c *gin.Context) {
	var query dto.TablesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	tables, err := h.schemaService.ListTables(c.Request.Context(), query.BaseOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tables)
}

// ListColumns godoc
// @ID           checkColumns
// @Summary      List columns of a table
// @Description  Lists column name, type, nullability and default in declaration order.
// @Description  Names that are not plain identifiers are rejected; names outside the allow-list are not found.
// @Tags         schema
// @Produce      json
// @Param        table path string true "Table name"
// @Success      200 {array}  schema.Column
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /check-columns/{table} [get]
func (h *SchemaHandler) ListColumns(c *gin.Context) {
	var uri dto.ColumnsURI
	if err := c.ShouldBindUri(&uri); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	columns, err := h.schemaService.ListColumns(c.Request.Context(), uri.Table)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, columns)
}
