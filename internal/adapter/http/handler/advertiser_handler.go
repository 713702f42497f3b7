package handler

import (
	"time"

	"rewards-mediation-gateway/internal/adapter/http/dto"
	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdvertiserHandler handles install and action callbacks.
type AdvertiserHandler struct {
	advertiser ports.AdvertiserService
}

// NewAdvertiserHandler creates a new AdvertiserHandler.
func NewAdvertiserHandler(advertiser ports.AdvertiserService) *AdvertiserHandler {
	return &AdvertiserHandler{advertiser: advertiser}
}

// ReportInstall handles POST /api/v1/advertiser/install.
// A positive delay_seconds schedules the callback and answers 202.
func (h *AdvertiserHandler) ReportInstall(c *gin.Context) {
	token, ok := credentialsToken(c)
	if !ok {
		return
	}

	var req dto.InstallCallbackRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	in := ports.InstallRequest{
		CredentialsToken: token,
		SubID:            req.SubID,
		InstallReferrer:  req.InstallReferrer,
		CustomParams:     req.CustomParams,
	}

	if req.DelaySeconds > 0 {
		if err := h.advertiser.ReportInstallWithDelay(c.Request.Context(), in, time.Duration(req.DelaySeconds)*time.Second); err != nil {
			response.Error(c, err)
			return
		}
		response.Accepted(c, dto.ScheduledCallbackResponse{Scheduled: true, DelaySeconds: req.DelaySeconds})
		return
	}

	entry, err := h.advertiser.ReportInstall(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toCallbackResponse(entry))
}

// ReportAction handles POST /api/v1/advertiser/actions.
func (h *AdvertiserHandler) ReportAction(c *gin.Context) {
	token, ok := credentialsToken(c)
	if !ok {
		return
	}

	var req dto.ActionCallbackRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	entry, err := h.advertiser.ReportAction(c.Request.Context(), ports.ActionRequest{
		CredentialsToken: token,
		ActionID:         req.ActionID,
		CustomParams:     req.CustomParams,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toCallbackResponse(entry))
}

func toCallbackResponse(entry *domain.CallbackLog) dto.CallbackResponse {
	return dto.CallbackResponse{
		ID:             entry.ID.String(),
		Kind:           string(entry.Kind),
		ActionID:       entry.ActionID,
		Status:         string(entry.Status),
		AnswerReceived: entry.AnswerReceived,
		HTTPStatus:     entry.HTTPStatus,
		LastError:      entry.LastError,
		CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
	}
}
