package mediation

import "rewards-mediation-gateway/internal/core/domain"

const TremorName = "Tremor"

// Tremor serves interstitials only.
type Tremor struct {
	*networkAdapter
}

func NewTremor(binding Binding) *Tremor {
	return &Tremor{&networkAdapter{
		name:     TremorName,
		version:  "2.0.0",
		formats:  []domain.AdFormat{domain.AdFormatInterstitial},
		settings: tremorSettings,
		playback: completedPlayback,
		binding:  binding,
	}}
}

func tremorSettings(cfg domain.AdapterConfig) (map[string]string, error) {
	appID, err := requireString(cfg, "app_id")
	if err != nil {
		return nil, err
	}
	return map[string]string{"app_id": appID}, nil
}
