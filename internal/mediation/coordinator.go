package mediation

import (
	"context"
	"sort"
	"strings"
	"sync"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"
	"rewards-mediation-gateway/pkg/metrics"

	"github.com/rs/zerolog"
)

// Coordinator implements ports.MediationCoordinator.
type Coordinator struct {
	log zerolog.Logger

	mu       sync.RWMutex
	adapters map[string]ports.MediationAdapter
	started  map[string]bool
}

// NewCoordinator registers adapters by lower-cased name.
func NewCoordinator(log zerolog.Logger, adapters ...ports.MediationAdapter) *Coordinator {
	c := &Coordinator{
		log:      log,
		adapters: make(map[string]ports.MediationAdapter, len(adapters)),
		started:  make(map[string]bool, len(adapters)),
	}
	for _, a := range adapters {
		c.adapters[strings.ToLower(a.Name())] = a
	}
	return c
}

// DefaultAdapters returns every supported adapter, wired to the bindings
// registered under its name. Networks without a binding fail to start.
func DefaultAdapters(bindings map[string]Binding) []ports.MediationAdapter {
	lookup := make(map[string]Binding, len(bindings))
	for name, b := range bindings {
		lookup[strings.ToLower(name)] = b
	}
	return []ports.MediationAdapter{
		NewAdColony(lookup[strings.ToLower(AdColonyName)]),
		NewVungle(lookup[strings.ToLower(VungleName)]),
		NewHyprMX(lookup[strings.ToLower(HyprMXName)]),
		NewTremor(lookup[strings.ToLower(TremorName)]),
		NewMarketPlace(),
	}
}

// Start starts every adapter that has a configuration block. Adapters that
// fail to start are logged and stay unavailable. It returns the number of
// started adapters.
func (c *Coordinator) Start(ctx context.Context, configs map[string]map[string]interface{}) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for rawName, cfg := range configs {
		name := strings.ToLower(rawName)
		adapter, ok := c.adapters[name]
		if !ok {
			c.log.Warn().Str("adapter", rawName).Msg("no mediation adapter with that name")
			continue
		}
		if c.started[name] {
			continue
		}
		if err := adapter.Start(ctx, domain.AdapterConfig(cfg)); err != nil {
			c.log.Error().Err(err).Str("adapter", adapter.Name()).Msg("mediation adapter failed to start")
			continue
		}
		c.started[name] = true
		n++
		c.log.Info().Str("adapter", adapter.Name()).Str("version", adapter.Version()).Msg("mediation adapter started")
	}
	return n
}

// Adapters lists the registered adapters sorted by name.
func (c *Coordinator) Adapters() []domain.AdapterInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.AdapterInfo, 0, len(c.adapters))
	for key, a := range c.adapters {
		out = append(out, domain.AdapterInfo{
			Name:    a.Name(),
			Version: a.Version(),
			Started: c.started[key],
			Formats: a.Formats(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Interstitial returns the started interstitial adapter for a provider type.
func (c *Coordinator) Interstitial(providerType string) (ports.InterstitialAdapter, bool) {
	a, ok := c.startedAdapter(providerType, domain.AdFormatInterstitial)
	if !ok {
		return nil, false
	}
	ia, ok := a.(ports.InterstitialAdapter)
	return ia, ok
}

// ValidateVideo asks network whether a rewarded video can be played.
func (c *Coordinator) ValidateVideo(ctx context.Context, network string, contextData map[string]string) (domain.ValidationResult, error) {
	va, err := c.video(network)
	if err != nil {
		return domain.ValidationError, err
	}
	result := va.ValidateVideo(ctx, contextData)
	metrics.MediationEvent(va.Name(), "validate_"+string(result))
	return result, nil
}

// PlayVideo plays a rewarded video and reports how it ended.
func (c *Coordinator) PlayVideo(ctx context.Context, network string) (domain.VideoEvent, error) {
	va, err := c.video(network)
	if err != nil {
		return domain.VideoEventNoSDK, err
	}
	metrics.MediationEvent(va.Name(), string(domain.VideoEventStarted))
	event, err := va.PlayVideo(ctx)
	metrics.MediationEvent(va.Name(), string(event))
	if err != nil {
		c.log.Warn().Err(err).Str("adapter", va.Name()).Msg("video playback failed")
		return event, apperror.ErrShowFailed(err)
	}
	return event, nil
}

func (c *Coordinator) video(network string) (ports.VideoAdapter, error) {
	c.mu.RLock()
	_, registered := c.adapters[strings.ToLower(network)]
	c.mu.RUnlock()
	if !registered {
		return nil, apperror.ErrAdapterUnavailable(network)
	}

	a, ok := c.startedAdapter(network, domain.AdFormatRewardedVideo)
	if !ok {
		if c.isStarted(network) {
			return nil, apperror.ErrUnsupportedFormat(network, string(domain.AdFormatRewardedVideo))
		}
		return nil, apperror.ErrAdapterUnavailable(network)
	}
	va, ok := a.(ports.VideoAdapter)
	if !ok {
		return nil, apperror.ErrUnsupportedFormat(network, string(domain.AdFormatRewardedVideo))
	}
	return va, nil
}

func (c *Coordinator) isStarted(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.started[strings.ToLower(name)]
}

func (c *Coordinator) startedAdapter(name string, format domain.AdFormat) (ports.MediationAdapter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := strings.ToLower(name)
	a, ok := c.adapters[key]
	if !ok || !c.started[key] {
		return nil, false
	}
	for _, f := range a.Formats() {
		if f == format {
			return a, true
		}
	}
	return nil, false
}
