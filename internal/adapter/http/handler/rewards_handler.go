package handler

import (
	"rewards-mediation-gateway/internal/adapter/http/dto"
	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// RewardsHandler serves currency deltas, unlock items and offerwall URLs.
type RewardsHandler struct {
	currency  ports.CurrencyService
	unlock    ports.UnlockService
	offerwall ports.OfferwallService
}

// NewRewardsHandler creates a new RewardsHandler.
func NewRewardsHandler(currency ports.CurrencyService, unlock ports.UnlockService, offerwall ports.OfferwallService) *RewardsHandler {
	return &RewardsHandler{currency: currency, unlock: unlock, offerwall: offerwall}
}

// CurrencyDelta handles GET /api/v1/currency/delta.
func (h *RewardsHandler) CurrencyDelta(c *gin.Context) {
	token, ok := credentialsToken(c)
	if !ok {
		return
	}

	result, err := h.currency.FetchDelta(c.Request.Context(), ports.DeltaRequest{
		CredentialsToken: token,
		TransactionID:    c.Query("transaction_id"),
		CurrencyID:       c.Query("currency_id"),
		CurrencyName:     c.Query("currency_name"),
		CustomParams:     customParamsFromQuery(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	d := result.Delta
	response.OK(c, dto.CurrencyDeltaResponse{
		DeltaOfCoins:        d.DeltaOfCoins.String(),
		LatestTransactionID: d.LatestTransactionID,
		CurrencyID:          d.CurrencyID,
		CurrencyName:        result.CurrencyName,
		IsDefault:           d.IsDefault,
		Cached:              result.Cached,
		Notification:        result.Notification,
	})
}

// UnlockItems handles GET /api/v1/unlock/items.
func (h *RewardsHandler) UnlockItems(c *gin.Context) {
	token, ok := credentialsToken(c)
	if !ok {
		return
	}

	items, err := h.unlock.FetchItems(c.Request.Context(), token, customParamsFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.UnlockItemsResponse{Items: make([]dto.UnlockItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.UnlockItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Unlocked:  item.Unlocked,
			Timestamp: item.Timestamp,
		})
	}
	response.OK(c, resp)
}

// OfferwallURL handles GET /api/v1/offerwall/url.
func (h *RewardsHandler) OfferwallURL(c *gin.Context) {
	token, ok := credentialsToken(c)
	if !ok {
		return
	}

	url, err := h.offerwall.BuildURL(c.Request.Context(), ports.OfferwallRequest{
		CredentialsToken: token,
		CurrencyName:     c.Query("currency_name"),
		UnlockItemID:     c.Query("unlock_item_id"),
		UnlockItemName:   c.Query("unlock_item_name"),
		CustomParams:     customParamsFromQuery(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.OfferwallURLResponse{URL: url})
}
