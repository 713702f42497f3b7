package handler

import (
	"rewards-mediation-gateway/internal/adapter/http/dto"
	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles session start and security token rotation.
type SessionHandler struct {
	sessions ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Start handles POST /api/v1/sessions.
func (h *SessionHandler) Start(c *gin.Context) {
	var req dto.StartSessionRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.sessions.Start(c.Request.Context(), ports.StartRequest{
		AppID:          req.AppID,
		UserID:         req.UserID,
		SecurityToken:  req.SecurityToken,
		InstallationID: req.InstallationID,
		Device:         toDeviceInfo(req.Device),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.StartSessionResponse{
		CredentialsToken: result.Credentials.Token,
		AppID:            result.Credentials.AppID,
		UserID:           result.Credentials.UserID,
		GeneratedUserID:  result.GeneratedUserID,
		SessionToken:     result.SessionToken,
		ExpiresAt:        result.ExpiresAt.Unix(),
	})
}

// RotateSecurityToken handles POST /api/v1/credentials/rotate.
func (h *SessionHandler) RotateSecurityToken(c *gin.Context) {
	token, ok := credentialsToken(c)
	if !ok {
		return
	}

	var req dto.RotateTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.sessions.RotateSecurityToken(c.Request.Context(), token, req.SecurityToken); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"credentials_token": token, "rotated": true})
}

func toDeviceInfo(d dto.DeviceRequest) domain.DeviceInfo {
	return domain.DeviceInfo{
		UDID:                  d.UDID,
		AndroidID:             d.AndroidID,
		HardwareSerial:        d.HardwareSerial,
		MACAddress:            d.MACAddress,
		OSVersion:             d.OSVersion,
		PhoneVersion:          d.PhoneVersion,
		Language:              d.Language,
		ScreenWidth:           d.ScreenWidth,
		ScreenHeight:          d.ScreenHeight,
		ScreenDensityX:        d.ScreenDensityX,
		ScreenDensityY:        d.ScreenDensityY,
		ScreenDensityCategory: d.ScreenDensityCategory,
		ReverseOrientation:    d.ReverseOrientation,
	}
}
