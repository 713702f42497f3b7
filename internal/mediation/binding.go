// Package mediation adapts third-party ad networks to a common lifecycle and
// coordinates the adapters configured for the gateway.
package mediation

import (
	"context"
	"errors"

	"rewards-mediation-gateway/internal/core/domain"
)

// Errors a Binding may return to describe why no ad is ready.
var (
	ErrNoFill    = errors.New("no ad available")
	ErrNetwork   = errors.New("network unreachable")
	ErrDiskSpace = errors.New("not enough disk space")
	ErrNoBinding = errors.New("no sdk binding registered")
)

// Binding is the surface of a network SDK an adapter drives. Bindings are
// provided by the process embedding the gateway, keyed by adapter name.
type Binding interface {
	// Init receives the validated adapter settings.
	Init(ctx context.Context, settings map[string]string) error
	AdReady(ctx context.Context, format domain.AdFormat) (bool, error)
	Display(ctx context.Context, format domain.AdFormat) error
	// Play blocks until the video is dismissed.
	Play(ctx context.Context) (domain.Playback, error)
}
