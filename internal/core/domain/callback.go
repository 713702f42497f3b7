package domain

import (
	"time"

	"github.com/google/uuid"
)

// CallbackKind distinguishes the advertiser callbacks.
type CallbackKind string

const (
	CallbackKindInstall CallbackKind = "INSTALL"
	CallbackKindAction  CallbackKind = "ACTION"
)

// CallbackStatus represents the outcome of a callback delivery.
type CallbackStatus string

const (
	CallbackStatusDelivered CallbackStatus = "DELIVERED"
	CallbackStatusFailed    CallbackStatus = "FAILED"
)

// CallbackLog records each advertiser callback sent to the backend.
type CallbackLog struct {
	ID               uuid.UUID      `json:"id"`
	Kind             CallbackKind   `json:"kind"`
	CredentialsToken string         `json:"credentials_token"`
	AppID            string         `json:"app_id"`
	ActionID         string         `json:"action_id,omitempty"`
	URL              string         `json:"-"` // Signed URL, kept for troubleshooting only
	AnswerReceived   bool           `json:"answer_received"`
	HTTPStatus       *int           `json:"http_status,omitempty"`
	Status           CallbackStatus `json:"status"`
	LastError        *string        `json:"last_error,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Delivered reports whether the backend acknowledged the callback.
func (l *CallbackLog) Delivered() bool {
	return l.Status == CallbackStatusDelivered
}
