package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionStartSession     AuditAction = "START_SESSION"
	AuditActionRotateToken      AuditAction = "ROTATE_SECURITY_TOKEN"
	AuditActionInstallCallback  AuditAction = "INSTALL_CALLBACK"
	AuditActionActionCallback   AuditAction = "ACTION_CALLBACK"
	AuditActionInterstitialShow AuditAction = "INTERSTITIAL_SHOW"
	AuditActionVideoPlay        AuditAction = "VIDEO_PLAY"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID               uuid.UUID   `json:"id"`
	CredentialsToken *string     `json:"credentials_token,omitempty"`
	Action           AuditAction `json:"action"`
	ResourceType     string      `json:"resource_type"`
	ResourceID       string      `json:"resource_id,omitempty"`
	Details          string      `json:"details,omitempty"` // JSON string
	IPAddress        string      `json:"ip_address"`
	CreatedAt        time.Time   `json:"created_at"`
}
