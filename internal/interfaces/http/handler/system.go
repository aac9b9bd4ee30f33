package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tienda/backend/internal/infrastructure/logger"
	"github.com/tienda/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// RootMessage is the greeting returned by the root endpoint
const RootMessage = "API de tienda funcionando correctamente"

// Pinger reports whether the store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles liveness and health endpoints
type SystemHandler struct {
	BaseHandler
	db Pinger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// Root godoc
// @ID           getRoot
// @Summary      Liveness check
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.StatusResponse
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	h.Success(c, dto.StatusResponse{OK: true, Mensaje: RootMessage})
}

// Health godoc
// @ID           getHealth
// @Summary      Health check
// @Description  Pings the store; answers 503 when it is unreachable
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Failure      503 {object} dto.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	now := time.Now().Format(time.RFC3339)
	if err := h.db.Ping(); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unhealthy",
			Time:     now,
			Database: "error",
		})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "healthy",
		Time:     now,
		Database: "ok",
	})
}
