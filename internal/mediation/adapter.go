package mediation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"rewards-mediation-gateway/internal/core/domain"
)

// settingsFunc validates an adapter configuration and flattens it into the
// settings handed to the binding.
type settingsFunc func(cfg domain.AdapterConfig) (map[string]string, error)

// playbackFunc turns a finished playback into the reported video event.
type playbackFunc func(p domain.Playback) domain.VideoEvent

// networkAdapter drives a Binding. The named network types embed it.
type networkAdapter struct {
	name     string
	version  string
	formats  []domain.AdFormat
	settings settingsFunc
	playback playbackFunc
	binding  Binding

	mu      sync.RWMutex
	started bool
}

func (a *networkAdapter) Name() string    { return a.name }
func (a *networkAdapter) Version() string { return a.version }

func (a *networkAdapter) Formats() []domain.AdFormat {
	out := make([]domain.AdFormat, len(a.formats))
	copy(out, a.formats)
	return out
}

func (a *networkAdapter) Start(ctx context.Context, cfg domain.AdapterConfig) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started {
		return fmt.Errorf("%s: already started", a.name)
	}
	if a.binding == nil {
		return fmt.Errorf("%s: %w", a.name, ErrNoBinding)
	}
	settings, err := a.settings(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", a.name, err)
	}
	if err := a.binding.Init(ctx, settings); err != nil {
		return fmt.Errorf("%s: init: %w", a.name, err)
	}
	a.started = true
	return nil
}

func (a *networkAdapter) isStarted() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.started
}

func (a *networkAdapter) IsAdAvailable(ctx context.Context, ad domain.InterstitialAd) (bool, error) {
	if !a.isStarted() {
		return false, ErrNoBinding
	}
	ready, err := a.binding.AdReady(ctx, domain.AdFormatInterstitial)
	if errors.Is(err, ErrNoFill) {
		return false, nil
	}
	return ready, err
}

func (a *networkAdapter) Show(ctx context.Context, ad domain.InterstitialAd, device domain.DeviceInfo) (*domain.Creative, error) {
	if !a.isStarted() {
		return nil, ErrNoBinding
	}
	if err := a.binding.Display(ctx, domain.AdFormatInterstitial); err != nil {
		return nil, err
	}
	return &domain.Creative{ProviderType: a.name, AdID: ad.AdID}, nil
}

func (a *networkAdapter) ValidateVideo(ctx context.Context, contextData map[string]string) domain.ValidationResult {
	if !a.isStarted() {
		return domain.ValidationError
	}
	ready, err := a.binding.AdReady(ctx, domain.AdFormatRewardedVideo)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ValidationTimeout
	case errors.Is(err, ErrNetwork):
		return domain.ValidationNetworkError
	case errors.Is(err, ErrDiskSpace):
		return domain.ValidationDiskSpaceError
	case errors.Is(err, ErrNoFill):
		return domain.ValidationNoVideoAvailable
	case err != nil:
		return domain.ValidationError
	case !ready:
		return domain.ValidationNoVideoAvailable
	}
	return domain.ValidationSuccess
}

func (a *networkAdapter) PlayVideo(ctx context.Context) (domain.VideoEvent, error) {
	if !a.isStarted() {
		return domain.VideoEventNoSDK, ErrNoBinding
	}
	p, err := a.binding.Play(ctx)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.VideoEventTimeout, nil
	case errors.Is(err, ErrNoFill):
		return domain.VideoEventNoVideo, nil
	case err != nil:
		return domain.VideoEventError, err
	}
	return a.playback(p), nil
}

// completedPlayback reports finished only when the network says so.
func completedPlayback(p domain.Playback) domain.VideoEvent {
	if p.Completed {
		return domain.VideoEventFinished
	}
	return domain.VideoEventAborted
}

// requireString returns the trimmed setting or an error naming it.
func requireString(cfg domain.AdapterConfig, key string) (string, error) {
	v := cfg.String(key)
	if v == "" {
		return "", errMissing(key)
	}
	return v, nil
}

func errMissing(key string) error {
	return fmt.Errorf("missing required setting %q", key)
}
