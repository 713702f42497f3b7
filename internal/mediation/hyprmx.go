package mediation

import "rewards-mediation-gateway/internal/core/domain"

const HyprMXName = "HyprMX"

// HyprMX serves rewarded video.
type HyprMX struct {
	*networkAdapter
}

func NewHyprMX(binding Binding) *HyprMX {
	return &HyprMX{&networkAdapter{
		name:     HyprMXName,
		version:  "1.1.0",
		formats:  []domain.AdFormat{domain.AdFormatRewardedVideo},
		settings: hyprMXSettings,
		playback: completedPlayback,
		binding:  binding,
	}}
}

func hyprMXSettings(cfg domain.AdapterConfig) (map[string]string, error) {
	settings := make(map[string]string, 3)
	for _, key := range []string{"distributor_id", "property_id"} {
		v, err := requireString(cfg, key)
		if err != nil {
			return nil, err
		}
		settings[key] = v
	}
	if userID := cfg.String("user_id"); userID != "" {
		settings["user_id"] = userID
	}
	return settings, nil
}
