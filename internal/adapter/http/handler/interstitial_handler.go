package handler

import (
	"rewards-mediation-gateway/internal/adapter/http/dto"
	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// InterstitialHandler handles the interstitial lifecycle.
type InterstitialHandler struct {
	interstitials ports.InterstitialService
}

// NewInterstitialHandler creates a new InterstitialHandler.
func NewInterstitialHandler(interstitials ports.InterstitialService) *InterstitialHandler {
	return &InterstitialHandler{interstitials: interstitials}
}

// Request handles POST /api/v1/interstitial/request.
func (h *InterstitialHandler) Request(c *gin.Context) {
	token, ok := credentialsToken(c)
	if !ok {
		return
	}

	var req dto.InterstitialRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	offer, err := h.interstitials.Request(c.Request.Context(), ports.InterstitialRequest{
		CredentialsToken: token,
		BackgroundURL:    req.BackgroundURL,
		Skin:             req.Skin,
		CustomParams:     req.CustomParams,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, offer)
}

// Show handles POST /api/v1/interstitial/show.
func (h *InterstitialHandler) Show(c *gin.Context) {
	token, ok := credentialsToken(c)
	if !ok {
		return
	}

	creative, err := h.interstitials.Show(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, creative)
}

// ReportEvent handles POST /api/v1/interstitial/events.
func (h *InterstitialHandler) ReportEvent(c *gin.Context) {
	token, ok := credentialsToken(c)
	if !ok {
		return
	}

	var req dto.InterstitialEventRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.interstitials.ReportEvent(c.Request.Context(), token, domain.InterstitialEvent(req.Event), req.Message); err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, gin.H{"event": req.Event})
}
