package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"
	"rewards-mediation-gateway/pkg/ids"

	"github.com/rs/zerolog"
)

const (
	paramBackgroundURL = "background_url"
	paramSkin          = "skin"
)

type interstitialResponse struct {
	Ads []map[string]interface{} `json:"ads"`
}

// heldOffer is the ad filled for a credentials token, until it is closed
// or replaced by the next request.
type heldOffer struct {
	requestID string
	ad        domain.InterstitialAd
	shown     bool
}

// InterstitialServiceImpl implements ports.InterstitialService.
type InterstitialServiceImpl struct {
	sessions    ports.SessionService
	backend     ports.BackendClient
	urls        *URLBuilder
	coordinator ports.MediationCoordinator
	tracker     ports.TrackingService
	log         zerolog.Logger

	mu     sync.Mutex
	offers map[string]*heldOffer
}

// NewInterstitialService creates a new InterstitialServiceImpl.
func NewInterstitialService(
	sessions ports.SessionService,
	backend ports.BackendClient,
	urls *URLBuilder,
	coordinator ports.MediationCoordinator,
	tracker ports.TrackingService,
	log zerolog.Logger,
) *InterstitialServiceImpl {
	return &InterstitialServiceImpl{
		sessions:    sessions,
		backend:     backend,
		urls:        urls,
		coordinator: coordinator,
		tracker:     tracker,
		log:         log,
		offers:      make(map[string]*heldOffer),
	}
}

// Request asks the backend for interstitial candidates and holds the first
// one a started adapter can serve.
func (s *InterstitialServiceImpl) Request(ctx context.Context, req ports.InterstitialRequest) (*ports.InterstitialOffer, error) {
	creds, err := s.sessions.Resolve(ctx, req.CredentialsToken)
	if err != nil {
		return nil, err
	}

	requestID := ids.New()
	params := map[string]string{paramRequestID: requestID}
	if req.BackgroundURL != "" {
		params[paramBackgroundURL] = req.BackgroundURL
	}
	if req.Skin != "" {
		params[paramSkin] = req.Skin
	}

	rawURL, err := s.urls.Build(s.backend.URL(ports.EndpointInterstitial), domain.NewSession(*creds, req.CustomParams), URLOptions{
		Params:        params,
		ScreenMetrics: true,
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.Get(ctx, ports.EndpointInterstitial, rawURL)
	if err := classifyResponse(nil, resp, err, ""); err != nil {
		s.track(ctx, *creds, requestID, domain.InterstitialEventError, domain.InterstitialAd{}, err.Error())
		return nil, err
	}
	var body interstitialResponse
	if err := decodeBody(resp.Body, &body); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.offers, creds.Token)
	s.mu.Unlock()

	offer := &ports.InterstitialOffer{RequestID: requestID}
	if len(body.Ads) == 0 {
		s.track(ctx, *creds, requestID, domain.InterstitialEventNoFill, domain.InterstitialAd{}, "")
		return offer, nil
	}

	for _, raw := range body.Ads {
		ad, err := parseInterstitialAd(raw)
		if err != nil {
			s.log.Warn().Err(err).Str("request_id", requestID).Msg("skipping malformed interstitial ad")
			continue
		}
		s.track(ctx, *creds, requestID, domain.InterstitialEventRequest, ad, "")

		adapter, ok := s.coordinator.Interstitial(ad.ProviderType)
		if !ok {
			s.track(ctx, *creds, requestID, domain.InterstitialEventNoSDK, ad, "")
			continue
		}
		available, err := adapter.IsAdAvailable(ctx, ad)
		if err != nil {
			s.track(ctx, *creds, requestID, domain.InterstitialEventError, ad, err.Error())
			continue
		}
		if !available {
			s.track(ctx, *creds, requestID, domain.InterstitialEventNoFill, ad, "")
			continue
		}

		s.track(ctx, *creds, requestID, domain.InterstitialEventFill, ad, "")
		s.mu.Lock()
		s.offers[creds.Token] = &heldOffer{requestID: requestID, ad: ad}
		s.mu.Unlock()

		offer.Available = true
		offer.Ad = &ad
		return offer, nil
	}
	return offer, nil
}

// Show renders the held ad through its adapter.
func (s *InterstitialServiceImpl) Show(ctx context.Context, credentialsToken string) (*domain.Creative, error) {
	creds, err := s.sessions.Resolve(ctx, credentialsToken)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	held, ok := s.offers[creds.Token]
	if ok && held.shown {
		ok = false
	}
	if ok {
		held.shown = true
	}
	s.mu.Unlock()
	if !ok {
		return nil, apperror.ErrNoAdAvailable()
	}

	adapter, found := s.coordinator.Interstitial(held.ad.ProviderType)
	if !found {
		s.track(ctx, *creds, held.requestID, domain.InterstitialEventShowError, held.ad, "adapter not started")
		return nil, apperror.ErrAdapterUnavailable(held.ad.ProviderType)
	}

	creative, err := adapter.Show(ctx, held.ad, creds.Device)
	if err != nil {
		s.track(ctx, *creds, held.requestID, domain.InterstitialEventShowError, held.ad, err.Error())
		return nil, apperror.ErrShowFailed(err)
	}
	s.track(ctx, *creds, held.requestID, domain.InterstitialEventImpression, held.ad, "")
	return creative, nil
}

// ReportEvent tracks an event the host observed on a shown ad.
func (s *InterstitialServiceImpl) ReportEvent(ctx context.Context, credentialsToken string, event domain.InterstitialEvent, message string) error {
	if !event.HostReportable() {
		return apperror.Validation(fmt.Sprintf("event %q cannot be reported by the host", event))
	}
	creds, err := s.sessions.Resolve(ctx, credentialsToken)
	if err != nil {
		return err
	}

	s.mu.Lock()
	held, ok := s.offers[creds.Token]
	if ok && !held.shown {
		ok = false
	}
	if ok && event == domain.InterstitialEventClose {
		delete(s.offers, creds.Token)
	}
	s.mu.Unlock()
	if !ok {
		return apperror.ErrNoAdAvailable()
	}

	s.track(ctx, *creds, held.requestID, event, held.ad, message)
	return nil
}

func (s *InterstitialServiceImpl) track(ctx context.Context, creds domain.Credentials, requestID string, event domain.InterstitialEvent, ad domain.InterstitialAd, message string) {
	s.tracker.Track(ctx, creds, domain.TrackingEvent{
		RequestID:    requestID,
		Event:        event,
		AdFormat:     domain.AdFormatInterstitial,
		ProviderType: ad.ProviderType,
		AdID:         ad.AdID,
		Message:      message,
	})
}

// parseInterstitialAd splits provider_type and ad_id from the context fields.
func parseInterstitialAd(raw map[string]interface{}) (domain.InterstitialAd, error) {
	var ad domain.InterstitialAd
	for k, v := range raw {
		var value string
		switch t := v.(type) {
		case nil:
			continue
		case string:
			value = t
		case json.Number, bool:
			value = fmt.Sprint(t)
		default:
			nested, err := json.Marshal(t)
			if err != nil {
				return ad, err
			}
			value = string(nested)
		}

		switch k {
		case "provider_type":
			ad.ProviderType = value
		case "ad_id":
			ad.AdID = value
		default:
			if ad.ContextData == nil {
				ad.ContextData = make(map[string]string)
			}
			ad.ContextData[k] = value
		}
	}
	if ad.ProviderType == "" || ad.AdID == "" {
		return ad, fmt.Errorf("interstitial ad without provider_type or ad_id")
	}
	return ad, nil
}
