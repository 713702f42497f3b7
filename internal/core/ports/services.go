package ports

import (
	"context"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// EncryptionService seals secrets at rest, bound to the record that owns them.
type EncryptionService interface {
	Seal(plaintext, owner string) (string, error)
	Open(sealed, owner string) (string, error)
}

// SignatureService signs parameter sets and response bodies with a
// shared secret, the way the rewards backend expects.
type SignatureService interface {
	SignParams(params map[string]string, secret string) string
	VerifyParams(params map[string]string, secret string, signature string) bool
	SignString(text string, secret string) string
	VerifyString(text string, secret string, signature string) bool
}

// TokenService handles JWT session tokens.
type TokenService interface {
	Generate(credentialsToken string, appID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	CredentialsToken string
	AppID            string
}

// CurrencyCache holds the last currency response per cache key.
type CurrencyCache interface {
	// Get returns nil, nil when nothing is cached.
	Get(ctx context.Context, key string) (*domain.CachedCurrencyResponse, error)
	Set(ctx context.Context, key string, entry *domain.CachedCurrencyResponse, ttl time.Duration) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, scope string, nonce string, ttl time.Duration) (bool, error)
}

// --- Service Ports (Business Logic) ---

// SessionService manages credentials and the session tokens issued for them.
type SessionService interface {
	Start(ctx context.Context, req StartRequest) (*StartResponse, error)
	Resolve(ctx context.Context, credentialsToken string) (*domain.Credentials, error)
	RotateSecurityToken(ctx context.Context, credentialsToken string, newToken string) error
}

// StartRequest holds validated input for starting a session.
type StartRequest struct {
	AppID          string
	UserID         string
	SecurityToken  string
	InstallationID string
	Device         domain.DeviceInfo
}

// StartResponse is returned once a session is started.
type StartResponse struct {
	Credentials     domain.Credentials
	GeneratedUserID bool
	SessionToken    string
	ExpiresAt       time.Time
}

// CurrencyService fetches virtual currency deltas from the VCS.
type CurrencyService interface {
	FetchDelta(ctx context.Context, req DeltaRequest) (*DeltaResult, error)
	// FetchDeltaAsync reports the outcome to listener exactly once,
	// unless ctx is done by then.
	FetchDeltaAsync(ctx context.Context, req DeltaRequest, listener CurrencyListener)
}

// DeltaRequest holds input for a currency delta request.
type DeltaRequest struct {
	CredentialsToken string
	TransactionID    string
	CurrencyID       string
	CurrencyName     string
	CustomParams     map[string]string
}

// DeltaResult is a successful currency delta.
type DeltaResult struct {
	Delta        domain.CurrencyDelta
	CurrencyName string
	Cached       bool
	Notification string
}

// CurrencyListener receives asynchronous currency results.
type CurrencyListener interface {
	OnDeltaReceived(result *DeltaResult)
	OnError(err error)
}

// UnlockService fetches unlock item status.
type UnlockService interface {
	FetchItems(ctx context.Context, credentialsToken string, customParams map[string]string) ([]domain.UnlockItem, error)
}

// OfferwallService builds offerwall URLs for the host to open.
type OfferwallService interface {
	BuildURL(ctx context.Context, req OfferwallRequest) (string, error)
}

// OfferwallRequest selects the unlock offerwall when UnlockItemID is set.
type OfferwallRequest struct {
	CredentialsToken string
	CurrencyName     string
	UnlockItemID     string
	UnlockItemName   string
	CustomParams     map[string]string
}

// AdvertiserService sends install and action callbacks.
type AdvertiserService interface {
	ReportInstall(ctx context.Context, req InstallRequest) (*domain.CallbackLog, error)
	ReportInstallWithDelay(ctx context.Context, req InstallRequest, delay time.Duration) error
	ReportAction(ctx context.Context, req ActionRequest) (*domain.CallbackLog, error)
}

// InstallRequest holds input for an install callback.
type InstallRequest struct {
	CredentialsToken string
	SubID            string
	InstallReferrer  string
	CustomParams     map[string]string
}

// ActionRequest holds input for an action callback.
type ActionRequest struct {
	CredentialsToken string
	ActionID         string
	CustomParams     map[string]string
}

// InterstitialService requests, shows and tracks interstitials.
type InterstitialService interface {
	Request(ctx context.Context, req InterstitialRequest) (*InterstitialOffer, error)
	Show(ctx context.Context, credentialsToken string) (*domain.Creative, error)
	ReportEvent(ctx context.Context, credentialsToken string, event domain.InterstitialEvent, message string) error
}

// InterstitialRequest holds input for an interstitial request.
type InterstitialRequest struct {
	CredentialsToken string
	BackgroundURL    string
	Skin             string
	CustomParams     map[string]string
}

// InterstitialOffer is the outcome of an interstitial request.
type InterstitialOffer struct {
	RequestID string                 `json:"request_id"`
	Available bool                   `json:"available"`
	Ad        *domain.InterstitialAd `json:"ad,omitempty"`
}

// TrackingService fires tracking beacons in the background.
type TrackingService interface {
	Track(ctx context.Context, creds domain.Credentials, event domain.TrackingEvent)
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
