package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/tienda/backend/internal/application/catalog"
	"github.com/tienda/backend/internal/domain/catalog"
)

// CategoryHandler handles category-related API endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategoryRequest documents the category creation body
// @Description Request body for creating a new category
type CreateCategoryRequest struct {
	Nombre      string  `json:"nombre" example:"Electrónica"`
	Descripcion *string `json:"descripcion" example:"Equipos y accesorios"`
}

// List godoc
// @ID           listCategorias
// @Summary      List categories
// @Tags         categorias
// @Produce      json
// @Success      200 {array}  catalog.Category
// @Failure      500 {object} dto.ErrorResponse
// @Router       /categorias [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Create godoc
// @ID           createCategoria
// @Summary      Create a category
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category creation request"
// @Success      201 {object} catalog.Category
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /categorias [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), payload)
	h.recordWrite(c, catalog.TableCategories, err)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}
