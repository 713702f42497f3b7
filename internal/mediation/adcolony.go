package mediation

import (
	"strings"

	"rewards-mediation-gateway/internal/core/domain"
)

const AdColonyName = "AdColony"

// AdColony serves interstitials and rewarded video from AdColony zones.
type AdColony struct {
	*networkAdapter
}

func NewAdColony(binding Binding) *AdColony {
	return &AdColony{&networkAdapter{
		name:     AdColonyName,
		version:  "2.0.3",
		formats:  []domain.AdFormat{domain.AdFormatInterstitial, domain.AdFormatRewardedVideo},
		settings: adColonySettings,
		playback: completedPlayback,
		binding:  binding,
	}}
}

func adColonySettings(cfg domain.AdapterConfig) (map[string]string, error) {
	appID, err := requireString(cfg, "app_id")
	if err != nil {
		return nil, err
	}
	zones := cfg.Strings("zone_ids")
	if len(zones) == 0 {
		return nil, errMissing("zone_ids")
	}

	settings := map[string]string{
		"app_id":   appID,
		"zone_ids": strings.Join(zones, ","),
	}
	for _, key := range []string{"client_options", "device_id", "custom_id"} {
		if v := cfg.String(key); v != "" {
			settings[key] = v
		}
	}
	return settings, nil
}
