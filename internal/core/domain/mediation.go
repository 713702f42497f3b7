package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AdFormat is an ad format a mediation adapter can serve.
type AdFormat string

const (
	AdFormatInterstitial  AdFormat = "interstitial"
	AdFormatRewardedVideo AdFormat = "rewarded_video"
)

// ValidationResult is the answer of a network when asked for a video.
type ValidationResult string

const (
	ValidationSuccess          ValidationResult = "success"
	ValidationNoVideoAvailable ValidationResult = "no_video_available"
	ValidationTimeout          ValidationResult = "timeout"
	ValidationNetworkError     ValidationResult = "network_error"
	ValidationDiskSpaceError   ValidationResult = "disk_space_error"
	ValidationError            ValidationResult = "error"
)

// VideoEvent is reported while a rewarded video plays.
type VideoEvent string

const (
	VideoEventStarted  VideoEvent = "started"
	VideoEventAborted  VideoEvent = "aborted"
	VideoEventFinished VideoEvent = "finished"
	VideoEventClosed   VideoEvent = "closed"
	VideoEventNoVideo  VideoEvent = "no_video"
	VideoEventTimeout  VideoEvent = "timeout"
	VideoEventNoSDK    VideoEvent = "no_sdk"
	VideoEventError    VideoEvent = "error"
)

// InterstitialEvent is tracked against the backend during an interstitial lifecycle.
type InterstitialEvent string

const (
	InterstitialEventRequest    InterstitialEvent = "request"
	InterstitialEventFill       InterstitialEvent = "fill"
	InterstitialEventNoFill     InterstitialEvent = "no_fill"
	InterstitialEventError      InterstitialEvent = "error"
	InterstitialEventImpression InterstitialEvent = "impression"
	InterstitialEventClick      InterstitialEvent = "click"
	InterstitialEventClose      InterstitialEvent = "close"
	InterstitialEventShowError  InterstitialEvent = "show_error"
	InterstitialEventNoSDK      InterstitialEvent = "no_sdk"
)

// HostReportable reports whether the host app may send this event itself.
func (e InterstitialEvent) HostReportable() bool {
	switch e {
	case InterstitialEventClick, InterstitialEventClose, InterstitialEventShowError:
		return true
	}
	return false
}

// InterstitialAd is one candidate ad returned by the interstitial endpoint.
type InterstitialAd struct {
	ProviderType string            `json:"provider_type"`
	AdID         string            `json:"ad_id"`
	ContextData  map[string]string `json:"context_data,omitempty"`
}

// Context returns a context value or "" when absent.
func (a InterstitialAd) Context(key string) string {
	if a.ContextData == nil {
		return ""
	}
	return a.ContextData[key]
}

// Creative is what the host needs to render a shown ad.
// Network adapters render through their binding and leave HTML empty.
type Creative struct {
	ProviderType string `json:"provider_type"`
	AdID         string `json:"ad_id"`
	HTML         string `json:"html,omitempty"`
	Orientation  string `json:"orientation,omitempty"`
}

// Playback describes how much of a rewarded video the user watched.
type Playback struct {
	Watched   time.Duration
	Total     time.Duration
	Completed bool
	Closed    bool
}

// AdapterInfo describes a registered mediation adapter.
type AdapterInfo struct {
	Name    string     `json:"name"`
	Version string     `json:"version"`
	Started bool       `json:"started"`
	Formats []AdFormat `json:"formats"`
}

// TrackingEvent is a single interstitial tracking beacon.
type TrackingEvent struct {
	ID           string            `json:"id"`
	RequestID    string            `json:"request_id"`
	Event        InterstitialEvent `json:"event"`
	AdFormat     AdFormat          `json:"ad_format"`
	ProviderType string            `json:"provider_type,omitempty"`
	AdID         string            `json:"ad_id,omitempty"`
	Message      string            `json:"message,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// AdapterConfig is the free-form configuration block of one adapter.
type AdapterConfig map[string]interface{}

// String returns a string setting or "".
func (c AdapterConfig) String(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	default:
		return fmt.Sprint(t)
	}
}

// Bool returns a boolean setting, def when absent or unparseable.
func (c AdapterConfig) Bool(key string, def bool) bool {
	v, ok := c[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

// Strings returns a list setting. Comma-separated strings are split.
func (c AdapterConfig) Strings(key string) []string {
	v, ok := c[key]
	if !ok || v == nil {
		return nil
	}
	var out []string
	switch t := v.(type) {
	case []string:
		out = append(out, t...)
	case []interface{}:
		for _, item := range t {
			out = append(out, fmt.Sprint(item))
		}
	case string:
		out = strings.Split(t, ",")
	default:
		out = []string{fmt.Sprint(t)}
	}
	cleaned := out[:0]
	for _, s := range out {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}
