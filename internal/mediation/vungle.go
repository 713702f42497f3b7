package mediation

import (
	"strconv"

	"rewards-mediation-gateway/internal/core/domain"
)

const VungleName = "Vungle"

// vungleFinishedRatio is the share of a video that has to be watched for
// the view to be rewarded.
const vungleFinishedRatio = 0.8

// Vungle serves interstitials and rewarded video.
type Vungle struct {
	*networkAdapter
}

func NewVungle(binding Binding) *Vungle {
	return &Vungle{&networkAdapter{
		name:     VungleName,
		version:  "3.0.1",
		formats:  []domain.AdFormat{domain.AdFormatInterstitial, domain.AdFormatRewardedVideo},
		settings: vungleSettings,
		playback: vunglePlayback,
		binding:  binding,
	}}
}

func vungleSettings(cfg domain.AdapterConfig) (map[string]string, error) {
	appID, err := requireString(cfg, "app_id")
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"app_id":                appID,
		"show_close_button":     strconv.FormatBool(cfg.Bool("show_close_button", false)),
		"sound_enabled":         strconv.FormatBool(cfg.Bool("sound_enabled", true)),
		"auto_rotation_enabled": strconv.FormatBool(cfg.Bool("auto_rotation_enabled", false)),
		"back_button_enabled":   strconv.FormatBool(cfg.Bool("back_button_enabled", false)),
	}, nil
}

func vunglePlayback(p domain.Playback) domain.VideoEvent {
	if p.Total <= 0 {
		return domain.VideoEventAborted
	}
	if float64(p.Watched)/float64(p.Total) >= vungleFinishedRatio {
		return domain.VideoEventFinished
	}
	return domain.VideoEventAborted
}
