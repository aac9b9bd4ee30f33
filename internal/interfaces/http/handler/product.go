package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/tienda/backend/internal/application/catalog"
	"github.com/tienda/backend/internal/domain/catalog"
)

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProductRequest documents the product creation body.
// Numbers may also be sent as strings; they are coerced server-side.
// @Description Request body for creating a new product
type CreateProductRequest struct {
	Nombre      string  `json:"nombre" example:"Laptop"`
	Descripcion *string `json:"descripcion" example:"14 pulgadas"`
	Precio      string  `json:"precio" example:"1299.90"`
	Stock       int64   `json:"stock" example:"5"`
	IDCategoria *int64  `json:"id_categoria" example:"1"`
}

// List godoc
// @ID           listProductos
// @Summary      List products
// @Description  Returns every product ordered by id
// @Tags         productos
// @Produce      json
// @Success      200 {array}  catalog.Product
// @Failure      500 {object} dto.ErrorResponse
// @Router       /productos [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Create godoc
// @ID           createProducto
// @Summary      Create a product
// @Description  Validates the payload and inserts a product, returning the stored row
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        request body CreateProductRequest true "Product creation request"
// @Success      201 {object} catalog.Product
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /productos [post]
func (h *ProductHandler) Create(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), payload)
	h.recordWrite(c, catalog.TableProducts, err)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}
