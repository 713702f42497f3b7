package handler

import (
	"rewards-mediation-gateway/internal/adapter/http/dto"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// MediationHandler exposes the registered mediation adapters.
type MediationHandler struct {
	coordinator ports.MediationCoordinator
}

// NewMediationHandler creates a new MediationHandler.
func NewMediationHandler(coordinator ports.MediationCoordinator) *MediationHandler {
	return &MediationHandler{coordinator: coordinator}
}

// Adapters handles GET /api/v1/mediation/adapters.
func (h *MediationHandler) Adapters(c *gin.Context) {
	response.OK(c, gin.H{"adapters": h.coordinator.Adapters()})
}

// ValidateVideo handles POST /api/v1/mediation/:network/validate.
func (h *MediationHandler) ValidateVideo(c *gin.Context) {
	network := c.Param("network")

	var req dto.ValidateVideoRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	result, err := h.coordinator.ValidateVideo(c.Request.Context(), network, req.ContextData)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ValidateVideoResponse{Network: network, Result: string(result)})
}

// PlayVideo handles POST /api/v1/mediation/:network/play.
func (h *MediationHandler) PlayVideo(c *gin.Context) {
	network := c.Param("network")

	event, err := h.coordinator.PlayVideo(c.Request.Context(), network)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PlayVideoResponse{Network: network, Event: string(event)})
}
