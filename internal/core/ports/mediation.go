package ports

import (
	"context"

	"rewards-mediation-gateway/internal/core/domain"
)

//go:generate mockgen -source=mediation.go -destination=mocks/mock_mediation.go -package=mocks

// MediationAdapter adapts one ad network to the common ad lifecycle.
type MediationAdapter interface {
	Name() string
	Version() string
	Formats() []domain.AdFormat
	// Start validates cfg and initialises the network. It is called once.
	Start(ctx context.Context, cfg domain.AdapterConfig) error
}

// InterstitialAdapter serves interstitials.
type InterstitialAdapter interface {
	MediationAdapter
	IsAdAvailable(ctx context.Context, ad domain.InterstitialAd) (bool, error)
	Show(ctx context.Context, ad domain.InterstitialAd, device domain.DeviceInfo) (*domain.Creative, error)
}

// VideoAdapter serves rewarded video.
type VideoAdapter interface {
	MediationAdapter
	ValidateVideo(ctx context.Context, contextData map[string]string) domain.ValidationResult
	PlayVideo(ctx context.Context) (domain.VideoEvent, error)
}

// MediationCoordinator owns the started adapters.
type MediationCoordinator interface {
	Adapters() []domain.AdapterInfo
	Interstitial(providerType string) (InterstitialAdapter, bool)
	ValidateVideo(ctx context.Context, network string, contextData map[string]string) (domain.ValidationResult, error)
	PlayVideo(ctx context.Context, network string) (domain.VideoEvent, error)
}
