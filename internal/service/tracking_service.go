package service

import (
	"context"
	"sync"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/ids"
	"rewards-mediation-gateway/pkg/metrics"

	"github.com/rs/zerolog"
)

const (
	paramEvent        = "event"
	paramAdID         = "ad_id"
	paramProviderType = "provider_type"
	paramRequestID    = "request_id"
	paramAdFormat     = "ad_format"
)

// TrackingServiceImpl implements ports.TrackingService. Beacons are sent in
// the background and failures are only logged.
type TrackingServiceImpl struct {
	backend ports.BackendClient
	urls    *URLBuilder
	log     zerolog.Logger
	now     func() time.Time
	wg      sync.WaitGroup
}

// NewTrackingService creates a new TrackingServiceImpl.
func NewTrackingService(backend ports.BackendClient, urls *URLBuilder, log zerolog.Logger) *TrackingServiceImpl {
	return &TrackingServiceImpl{backend: backend, urls: urls, log: log, now: time.Now}
}

// Track fires one tracking beacon.
func (s *TrackingServiceImpl) Track(ctx context.Context, creds domain.Credentials, event domain.TrackingEvent) {
	if event.ID == "" {
		event.ID = ids.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now()
	}
	metrics.MediationEvent(event.ProviderType, string(event.Event))

	params := map[string]string{
		paramEvent:     string(event.Event),
		paramRequestID: event.RequestID,
		paramAdFormat:  string(event.AdFormat),
	}
	if event.AdID != "" {
		params[paramAdID] = event.AdID
	}
	if event.ProviderType != "" {
		params[paramProviderType] = event.ProviderType
	}

	rawURL, err := s.urls.Build(s.backend.URL(ports.EndpointTracker), domain.NewSession(creds), URLOptions{Params: params})
	if err != nil {
		s.log.Warn().Err(err).Str("event", string(event.Event)).Msg("tracking url could not be built")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		resp, err := s.backend.Get(context.WithoutCancel(ctx), ports.EndpointTracker, rawURL)
		if err != nil {
			s.log.Warn().Err(err).Str("event_id", event.ID).Msg("tracking beacon failed")
			return
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			s.log.Warn().Int("status", resp.StatusCode).Str("event_id", event.ID).Msg("tracking beacon rejected")
			return
		}
		s.log.Debug().Str("event_id", event.ID).Str("event", string(event.Event)).Str("provider", event.ProviderType).Msg("tracking beacon sent")
	}()
}

// Wait blocks until all beacons have been sent.
func (s *TrackingServiceImpl) Wait() {
	s.wg.Wait()
}
