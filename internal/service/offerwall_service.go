package service

import (
	"context"

	"rewards-mediation-gateway/internal/core/domain"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/apperror"
)

const (
	paramUnlockItem     = "unlock_item"
	paramUnlockItemName = "unlock_item_name"
	allowCampaignOn     = "on"
)

// OfferwallServiceImpl implements ports.OfferwallService. URLs are only
// built here; the host opens them.
type OfferwallServiceImpl struct {
	sessions ports.SessionService
	backend  ports.BackendClient
	urls     *URLBuilder
}

// NewOfferwallService creates a new OfferwallServiceImpl.
func NewOfferwallService(sessions ports.SessionService, backend ports.BackendClient, urls *URLBuilder) *OfferwallServiceImpl {
	return &OfferwallServiceImpl{sessions: sessions, backend: backend, urls: urls}
}

// BuildURL returns the offerwall URL, or the unlock offerwall URL when an
// unlock item is requested.
func (s *OfferwallServiceImpl) BuildURL(ctx context.Context, req ports.OfferwallRequest) (string, error) {
	creds, err := s.sessions.Resolve(ctx, req.CredentialsToken)
	if err != nil {
		return "", err
	}

	endpoint := ports.EndpointOfferwall
	params := map[string]string{ParamAllowCampaign: allowCampaignOn}
	if req.CurrencyName != "" {
		params[ParamCurrency] = req.CurrencyName
	}

	if req.UnlockItemID != "" {
		if err := domain.ValidateIdentifier(req.UnlockItemID); err != nil {
			return "", apperror.ErrInvalidIdentifier("unlock item id", err.Error())
		}
		endpoint = ports.EndpointOfferwallUnlock
		params = map[string]string{paramUnlockItem: req.UnlockItemID}
		if req.UnlockItemName != "" {
			params[paramUnlockItemName] = req.UnlockItemName
		}
	} else if req.UnlockItemName != "" {
		return "", apperror.Validation("unlock_item_name requires unlock_item_id")
	}

	sess := domain.NewSession(*creds, req.CustomParams)
	return s.urls.Build(s.backend.URL(endpoint), sess, URLOptions{Params: params, Unsigned: true})
}
