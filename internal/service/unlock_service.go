package service

import (
	"context"
	"strconv"
	"time"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// UnlockServiceImpl implements ports.UnlockService.
type UnlockServiceImpl struct {
	sessions ports.SessionService
	backend  ports.BackendClient
	urls     *URLBuilder
	sigSvc   ports.SignatureService
	log      zerolog.Logger
	now      func() time.Time
}

// NewUnlockService creates a new UnlockServiceImpl.
func NewUnlockService(
	sessions ports.SessionService,
	backend ports.BackendClient,
	urls *URLBuilder,
	sigSvc ports.SignatureService,
	log zerolog.Logger,
) *UnlockServiceImpl {
	return &UnlockServiceImpl{
		sessions: sessions,
		backend:  backend,
		urls:     urls,
		sigSvc:   sigSvc,
		log:      log,
		now:      time.Now,
	}
}

// FetchItems returns the unlock status of every item of the app for the user.
func (s *UnlockServiceImpl) FetchItems(ctx context.Context, credentialsToken string, customParams map[string]string) ([]domain.UnlockItem, error) {
	creds, err := s.sessions.Resolve(ctx, credentialsToken)
	if err != nil {
		return nil, err
	}
	if !creds.HasSecurityToken() {
		return nil, apperror.ErrMissingSecurityToken()
	}

	rawURL, err := s.urls.Build(s.backend.URL(ports.EndpointUnlockItems), domain.NewSession(*creds, customParams), URLOptions{
		Params: map[string]string{ParamTimestamp: strconv.FormatInt(s.now().Unix(), 10)},
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.Get(ctx, ports.EndpointUnlockItems, rawURL)
	if err := classifyResponse(s.sigSvc, resp, err, creds.SecurityToken); err != nil {
		s.log.Warn().Err(err).Str("credentials_token", creds.Token).Msg("unlock items request failed")
		return nil, err
	}

	var items []domain.UnlockItem
	if err := decodeBody(resp.Body, &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == "" {
			return nil, apperror.ErrInvalidResponse(nil)
		}
	}
	if items == nil {
		items = []domain.UnlockItem{}
	}
	return items, nil
}
