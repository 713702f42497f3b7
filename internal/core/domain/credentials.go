package domain

import (
	"crypto/md5"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrMissingAppID is returned when credentials are built without an app id.
var ErrMissingAppID = errors.New("app id must not be empty")

// DeviceInfo describes the host device a session was started from.
// Values are reported by the host app and forwarded verbatim to the backend.
type DeviceInfo struct {
	UDID                  string `json:"udid,omitempty"`
	AndroidID             string `json:"android_id,omitempty"`
	HardwareSerial        string `json:"hardware_serial,omitempty"`
	MACAddress            string `json:"mac_address,omitempty"`
	OSVersion             string `json:"os_version,omitempty"`
	PhoneVersion          string `json:"phone_version,omitempty"`
	Language              string `json:"language,omitempty"`
	ScreenWidth           string `json:"screen_width,omitempty"`
	ScreenHeight          string `json:"screen_height,omitempty"`
	ScreenDensityX        string `json:"screen_density_x,omitempty"`
	ScreenDensityY        string `json:"screen_density_y,omitempty"`
	ScreenDensityCategory string `json:"screen_density_category,omitempty"`
	ReverseOrientation    bool   `json:"reverse_orientation,omitempty"`
}

// Credentials identifies one app/user pairing against the rewards backend.
// Values are immutable; rotation produces a new value via WithSecurityToken.
type Credentials struct {
	Token            string     `json:"credentials_token"`
	AppID            string     `json:"app_id"`
	UserID           string     `json:"user_id"`
	SecurityToken    string     `json:"-"` // Plaintext, never exposed
	SecurityTokenEnc string     `json:"-"` // Encrypted form persisted by repositories
	Device           DeviceInfo `json:"device"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// NewCredentials derives the credentials token and returns the new value.
func NewCredentials(appID, userID, securityToken string, device DeviceInfo, now time.Time) (Credentials, error) {
	token, err := CredentialsToken(appID, userID)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{
		Token:         token,
		AppID:         appID,
		UserID:        userID,
		SecurityToken: strings.TrimSpace(securityToken),
		Device:        device,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CredentialsToken returns the name-based (version 3, MD5) UUID of
// appID + "-" + userID. The same pair always yields the same token.
func CredentialsToken(appID, userID string) (string, error) {
	if strings.TrimSpace(appID) == "" {
		return "", ErrMissingAppID
	}
	sum := md5.Sum([]byte(appID + "-" + userID))
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.UUID(sum).String(), nil
}

// HasSecurityToken reports whether signed backend calls are possible.
func (c Credentials) HasSecurityToken() bool {
	return c.SecurityToken != ""
}

// WithSecurityToken returns a copy carrying the rotated security token.
func (c Credentials) WithSecurityToken(token string, now time.Time) Credentials {
	c.SecurityToken = strings.TrimSpace(token)
	c.SecurityTokenEnc = ""
	c.UpdatedAt = now
	return c
}

// String masks the security token.
func (c Credentials) String() string {
	masked := "<none>"
	if c.HasSecurityToken() {
		masked = "<redacted>"
	}
	return "Credentials{token=" + c.Token + ", appId=" + c.AppID + ", userId=" + c.UserID + ", securityToken=" + masked + "}"
}
