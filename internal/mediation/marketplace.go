package mediation

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"rewards-mediation-gateway/internal/core/domain"
)

const MarketPlaceName = "MarketPlace"

// Locked screen orientations reported to the host.
const (
	OrientationPortrait         = "portrait"
	OrientationLandscape        = "landscape"
	OrientationReversePortrait  = "reverse_portrait"
	OrientationReverseLandscape = "reverse_landscape"
)

// Device rotations, in quarter turns.
const (
	rotation0 = iota
	rotation90
	rotation180
	rotation270
)

var errNoHTML = errors.New("ad carries no html")

// MarketPlace serves the backend's own HTML interstitials. It needs no
// network SDK.
type MarketPlace struct{}

func NewMarketPlace() *MarketPlace {
	return &MarketPlace{}
}

func (m *MarketPlace) Name() string    { return MarketPlaceName }
func (m *MarketPlace) Version() string { return "1.0.0" }

func (m *MarketPlace) Formats() []domain.AdFormat {
	return []domain.AdFormat{domain.AdFormatInterstitial}
}

func (m *MarketPlace) Start(ctx context.Context, cfg domain.AdapterConfig) error {
	return nil
}

// IsAdAvailable reports whether the ad carries html to render.
func (m *MarketPlace) IsAdAvailable(ctx context.Context, ad domain.InterstitialAd) (bool, error) {
	return ad.Context("html") != "", nil
}

func (m *MarketPlace) Show(ctx context.Context, ad domain.InterstitialAd, device domain.DeviceInfo) (*domain.Creative, error) {
	html := ad.Context("html")
	if html == "" {
		return nil, errNoHTML
	}
	return &domain.Creative{
		ProviderType: MarketPlaceName,
		AdID:         ad.AdID,
		HTML:         html,
		Orientation:  LockedOrientation(ad.Context("orientation"), ad.Context("rotation"), device.ReverseOrientation),
	}, nil
}

// LockedOrientation resolves the orientation the creative must be locked
// to. Devices with a reverse natural orientation report rotations shifted by
// a quarter turn. Unknown combinations return "" and leave the screen unlocked.
func LockedOrientation(orientation, rotation string, reverseDevice bool) string {
	r, err := strconv.Atoi(strings.TrimSpace(rotation))
	if err != nil {
		return ""
	}

	switch strings.ToLower(strings.TrimSpace(orientation)) {
	case OrientationPortrait:
		if reverseDevice {
			switch r {
			case rotation270:
				return OrientationPortrait
			case rotation90:
				return OrientationReversePortrait
			}
			return ""
		}
		switch r {
		case rotation180:
			return OrientationReversePortrait
		case rotation0:
			return OrientationPortrait
		}
	case OrientationLandscape:
		if reverseDevice {
			switch r {
			case rotation180:
				return OrientationReverseLandscape
			case rotation0:
				return OrientationLandscape
			}
			return ""
		}
		switch r {
		case rotation270:
			return OrientationReverseLandscape
		case rotation90:
			return OrientationLandscape
		}
	}
	return ""
}
