package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/tienda/backend/internal/application/partner"
	"github.com/tienda/backend/internal/domain/partner"
)

// ClientHandler handles client-related API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *partnerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// CreateClientRequest documents the client creation body
// @Description Request body for creating a new client
type CreateClientRequest struct {
	Nombre    string  `json:"nombre" example:"Ana Pérez"`
	Email     *string `json:"email" example:"ana@example.com"`
	Direccion *string `json:"direccion" example:"Av. Siempre Viva 742"`
	Telefono  *string `json:"telefono" example:"555-0101"`
}

// List godoc
// @ID           listClientes
// @Summary      List clients
// @Description  Returns every client ordered by id
// @Tags         clientes
// @Produce      json
// @Success      200 {array}  partner.Client
// @Failure      500 {object} dto.ErrorResponse
// @Router       /clientes [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, clients)
}

// Create godoc
// @ID           createCliente
// @Summary      Create a client
// @Description  Validates the payload and inserts a client. A duplicate email is rejected by the store.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        request body CreateClientRequest true "Client creation request"
// @Success      201 {object} partner.Client
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /clientes [post]
func (h *ClientHandler) Create(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), payload)
	h.recordWrite(c, partner.TableClients, err)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, client)
}
