package ports

import "context"

//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// Endpoint names a backend resource. Names double as config keys for URL overrides.
type Endpoint string

const (
	EndpointCurrency        Endpoint = "vcs"
	EndpointUnlockItems     Endpoint = "unlock_items"
	EndpointInstall         Endpoint = "installs"
	EndpointAction          Endpoint = "actions"
	EndpointInterstitial    Endpoint = "interstitial"
	EndpointTracker         Endpoint = "tracker"
	EndpointOfferwall       Endpoint = "offerwall"
	EndpointOfferwallUnlock Endpoint = "offerwall_unlock"
)

// ResponseSignatureHeader carries sha1(body + security token) on signed responses.
const ResponseSignatureHeader = "X-Sponsorpay-Response-Signature"

// RawResponse is a backend reply before classification.
type RawResponse struct {
	StatusCode int
	Body       []byte
	Signature  string
}

// BackendClient performs GET requests against the rewards backend.
type BackendClient interface {
	// URL returns the base URL of endpoint for the configured environment.
	URL(endpoint Endpoint) string
	// Get returns an error only when no response was received.
	Get(ctx context.Context, endpoint Endpoint, rawURL string) (*RawResponse, error)
}
