package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// Actions are resolved from the matched route template.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath())
		if action == "" {
			return
		}

		var credentialsToken *string
		if token, ok := CredentialsToken(c); ok {
			credentialsToken = &token
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:               uuid.New(),
			CredentialsToken: credentialsToken,
			Action:           action,
			ResourceType:     resourceType,
			ResourceID:       c.Param("network"),
			IPAddress:        c.ClientIP(),
			Details:          string(details),
			CreatedAt:        time.Now(),
		})
	}
}

func mapRouteToAction(route string) (domain.AuditAction, string) {
	switch route {
	case "/api/v1/sessions":
		return domain.AuditActionStartSession, "credentials"
	case "/api/v1/credentials/rotate":
		return domain.AuditActionRotateToken, "credentials"
	case "/api/v1/advertiser/install":
		return domain.AuditActionInstallCallback, "callback"
	case "/api/v1/advertiser/actions":
		return domain.AuditActionActionCallback, "callback"
	case "/api/v1/interstitial/show":
		return domain.AuditActionInterstitialShow, "interstitial"
	case "/api/v1/mediation/:network/play":
		return domain.AuditActionVideoPlay, "adapter"
	}
	return "", ""
}
