package handler

import (
	"github.com/gin-gonic/gin"
	tradeapp "github.com/tienda/backend/internal/application/trade"
	"github.com/tienda/backend/internal/domain/trade"
)

// OrderHandler handles order-related API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrderRequest documents the order creation body
// @Description Request body for creating a new order
type CreateOrderRequest struct {
	TipoOrden string `json:"tipo_orden" example:"venta"`
	IDCliente *int64 `json:"id_cliente" example:"1"`
}

// List godoc
// @ID           listOrdenes
// @Summary      List orders
// @Description  Returns every order ordered by id
// @Tags         ordenes
// @Produce      json
// @Success      200 {array}  trade.Order
// @Failure      500 {object} dto.ErrorResponse
// @Router       /ordenes [get]
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Create godoc
// @ID           createOrden
// @Summary      Create an order
// @Description  Validates the payload, checks the referenced client exists, and inserts the order
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        request body CreateOrderRequest true "Order creation request"
// @Success      201 {object} trade.Order
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /ordenes [post]
func (h *OrderHandler) Create(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), payload)
	h.recordWrite(c, trade.TableOrders, err)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}
